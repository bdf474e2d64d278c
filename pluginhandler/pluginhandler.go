package pluginhandler

import (
	"fmt"
	"strings"

	"github.com/anorb/rwplugin"
	"github.com/anorb/rwplugin/rwcore"
)

// Command contains information for a chat command
type Command struct {
	Name  string             // Name the command is typed as
	Exec  rwcore.CommandFunc // Function that will be executed when command is used
	Help  string             // Help text shown by the server's help listing
	Usage string             // Usage line the server prints when Exec returns false
}

// NewCommand is a helper method that creates a new Command with the
// required fields and returns the Command
func NewCommand(name string, f rwcore.CommandFunc) *Command {
	return &Command{Name: name, Exec: f, Usage: "/" + name}
}

// SetHelp is a helper method that adds the help text to the Help field
// of the Command
func (c *Command) SetHelp(help string) *Command {
	c.Help = help
	return c
}

// SetUsage is a helper method that replaces the default usage line of
// the Command
func (c *Command) SetUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// Register hands every command to srv. Commands the server refuses are
// reported together in the returned error; the others stay registered.
func Register(srv rwcore.Server, cmds ...*Command) error {
	var rejected []string
	for _, c := range cmds {
		if !srv.RegisterCommand(c.Name, c.Exec, c.Help, c.Usage) {
			rejected = append(rejected, c.Name)
		}
	}
	if len(rejected) > 0 {
		return fmt.Errorf("%w: %s", rwplugin.ErrCommandRejected, strings.Join(rejected, ", "))
	}
	return nil
}

package rwplugin

import (
	"fmt"
	"strings"

	"github.com/anorb/rwplugin/rwcore"
)

// Logger prefixes plugin output the same way on every server log.
type Logger struct {
	out  rwcore.Logger
	name string
}

// NewLogger returns a Logger writing to srv's log on behalf of the plugin
// called name.
func NewLogger(srv rwcore.Server, name string) *Logger {
	return &Logger{out: srv.Logger(), name: name}
}

func (l *Logger) print(level, msg string, extra ...interface{}) {
	line := fmt.Sprintf("%s: [%s] %s", level, l.name, msg)
	if len(extra) > 0 {
		line += " " + strings.TrimSuffix(fmt.Sprintln(extra...), "\n")
	}
	l.out.Out(line)
}

// Info logs msg followed by any extra values.
func (l *Logger) Info(msg string, extra ...interface{}) {
	l.print("INFO", msg, extra...)
}

// Error logs msg followed by any extra values.
func (l *Logger) Error(msg string, extra ...interface{}) {
	l.print("ERR", msg, extra...)
}

// Package devhost is a small in-process RozWorld host for trying plugins
// out. It keeps a command table, the console and a list of connected
// players, each with its own chat hook lease, which is all the example
// plugins need from a server.
package devhost

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/anorb/rwplugin/rwcore"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoPlugin      = errors.New("no plugin loaded")
	ErrAlreadyLoaded = errors.New("plugin already loaded")
	ErrStarted       = errors.New("plugin already started")
	ErrNotStarted    = errors.New("plugin not started")
	ErrStopped       = errors.New("plugin already stopped")
)

type command struct {
	Name  string             // Name of command
	Exec  rwcore.CommandFunc // Function that will be executed when command is used
	Help  string             // Help text for the help command
	Usage string             // Printed when Exec reports failure
}

// Server contains everything about the host itself
type Server struct {
	Config Config
	log    *logrus.Logger

	mu          sync.Mutex
	plugin      rwcore.Plugin
	commands    map[string]*command
	console     *Player
	players     []*Player
	registering bool
	started     bool
	stopped     bool
}

// New creates a Server writing its log to logOut.
func New(cfg Config, logOut io.Writer) *Server {
	s := &Server{
		Config:   cfg,
		log:      newLogger(logOut, cfg.LogLevel),
		commands: make(map[string]*command),
	}
	s.commands["help"] = &command{
		Name:  "help",
		Exec:  s.help,
		Help:  "Lists the available commands.",
		Usage: "/help",
	}
	return s
}

// Load constructs the plugin with factory. Only one plugin may be loaded.
func (s *Server) Load(factory rwcore.Factory) error {
	s.mu.Lock()
	if s.plugin != nil {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.mu.Unlock()

	p := factory(s)

	s.mu.Lock()
	s.plugin = p
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{
		"plugin":      p.Name(),
		"version":     p.Version(),
		"description": p.Description(),
	}).Info("Plugin loaded")
	return nil
}

// Start raises the Starting event. Commands may only be registered while
// it runs.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.plugin == nil {
		s.mu.Unlock()
		return ErrNoPlugin
	}
	if s.started {
		s.mu.Unlock()
		return ErrStarted
	}
	s.started = true
	s.registering = true
	p := s.plugin
	s.mu.Unlock()

	p.Starting()

	s.mu.Lock()
	s.registering = false
	s.mu.Unlock()
	s.log.WithField("plugin", p.Name()).Info("Plugin started")
	return nil
}

// Stop raises the Stopping event.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	if s.stopped {
		s.mu.Unlock()
		return ErrStopped
	}
	s.stopped = true
	p := s.plugin
	s.mu.Unlock()

	p.Stopping()
	s.log.WithField("plugin", p.Name()).Info("Plugin stopped")
	return nil
}

// Join connects a new human player whose messages are written to out.
func (s *Server) Join(name string, out io.Writer) *Player {
	return s.join(name, rwcore.SenderPlayer, out)
}

// JoinBot connects a local bot player.
func (s *Server) JoinBot(name string, out io.Writer) *Player {
	return s.join(name, rwcore.SenderBot, out)
}

// Console returns the server's own sender. The first call decides where its
// messages are written; it does not receive broadcasts.
func (s *Server) Console(out io.Writer) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.console == nil {
		s.console = newPlayer("Server", rwcore.SenderConsole, out, s.log)
	}
	return s.console
}

func (s *Server) join(name string, kind rwcore.SenderKind, out io.Writer) *Player {
	p := newPlayer(name, kind, out, s.log)
	s.mu.Lock()
	s.players = append(s.players, p)
	s.mu.Unlock()
	s.log.WithField("player", name).Info("Player joined")
	return p
}

// Leave disconnects p.
func (s *Server) Leave(p *Player) {
	s.mu.Lock()
	s.players = lo.Without(s.players, p)
	s.mu.Unlock()
	s.log.WithField("player", p.Name()).Info("Player left")
}

// Logger satisfies rwcore.Server.
func (s *Server) Logger() rwcore.Logger {
	return pluginLog{entry: s.log.WithField("source", "plugin")}
}

// RegisterCommand satisfies rwcore.Server. Names are case-insensitive and
// cannot be registered twice.
func (s *Server) RegisterCommand(name string, handler rwcore.CommandFunc, helpText, usage string) bool {
	key := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.registering {
		s.log.WithField("command", key).Warn("Command registered outside of Starting, ignoring")
		return false
	}
	if key == "" || handler == nil {
		return false
	}
	if _, taken := s.commands[key]; taken {
		s.log.WithField("command", key).Warn("Command already registered, ignoring")
		return false
	}
	s.commands[key] = &command{Name: key, Exec: handler, Help: helpText, Usage: usage}
	s.log.WithField("command", key).Info("Command registered")
	return true
}

// BroadcastMessage satisfies rwcore.Server.
func (s *Server) BroadcastMessage(text string) {
	s.mu.Lock()
	players := append([]*Player(nil), s.players...)
	s.mu.Unlock()

	s.log.WithField("broadcast", true).Info(text)
	for _, p := range players {
		p.SendMessage(text)
	}
}

// Dispatch handles one line typed by p: a command when it starts with the
// command prefix, chat otherwise.
func (s *Server) Dispatch(p *Player, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, s.Config.CommandPrefix) {
		s.handleCommand(p, strings.TrimPrefix(line, s.Config.CommandPrefix))
		return
	}
	s.handleChat(p, line)
}

func (s *Server) handleCommand(p *Player, text string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	s.mu.Lock()
	com, ok := s.commands[name]
	s.mu.Unlock()

	if !ok {
		p.sendError(s.Config.UnknownCommandMessage)
		return
	}
	s.log.WithFields(logrus.Fields{"player": p.Name(), "command": name}).Debug("Command issued")
	if !com.Exec(p, args) && com.Usage != "" {
		p.sendError("Usage: " + com.Usage)
	}
}

// handleChat gives the line to p's chat hook if one is set. The hook runs
// without any lock held so it may release itself. Lines the hook did not
// handle go to the server chat.
func (s *Server) handleChat(p *Player, text string) {
	if hook := p.chatHook(); hook != nil && hook(p, text) {
		return
	}
	s.BroadcastMessage(p.Name() + ": " + text)
}

func (s *Server) help(sender rwcore.CommandSender, args []string) bool {
	s.mu.Lock()
	cmds := lo.Values(s.commands)
	s.mu.Unlock()
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Command", "Usage", "Description"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, c := range cmds {
		table.Append([]string{c.Name, c.Usage, c.Help})
	}
	table.Render()

	sender.SendMessage("Commands:\n" + strings.TrimRight(b.String(), "\n"))
	return true
}

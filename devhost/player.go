package devhost

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/anorb/rwplugin/rwcore"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
)

// tokens hands out chat hook tokens. They are unique across every sender
// of the process so a stale token can never release somebody else's hook.
var tokens atomic.Int64

// Player is somebody connected to the development host, or the host's own
// console. It satisfies rwcore.CommandSender.
type Player struct {
	ID   uuid.UUID
	name string
	kind rwcore.SenderKind
	log  *logrus.Entry

	mu        sync.Mutex
	out       io.Writer
	hook      rwcore.ChatHookFunc
	hookToken int
}

func newPlayer(name string, kind rwcore.SenderKind, out io.Writer, log *logrus.Logger) *Player {
	return &Player{
		ID:        uuid.New(),
		name:      name,
		kind:      kind,
		log:       log.WithFields(logrus.Fields{"player": name, "kind": kind}),
		out:       out,
		hookToken: rwcore.ChatHookInvalid,
	}
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Kind tells players, bots and the console apart.
func (p *Player) Kind() rwcore.SenderKind { return p.kind }

// SendMessage writes text to the player's terminal.
func (p *Player) SendMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, color.Cyan.Render("> ")+text)
}

func (p *Player) sendError(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, color.Red.Render("! ")+text)
}

// HookChatToCallback satisfies rwcore.CommandSender. Only one command can
// hook a player's chat at a time.
func (p *Player) HookChatToCallback(handler rwcore.ChatHookFunc) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if handler == nil || p.hookToken != rwcore.ChatHookInvalid {
		return rwcore.ChatHookInvalid
	}
	p.hookToken = int(tokens.Add(1))
	p.hook = handler
	p.log.WithField("token", p.hookToken).Debug("Chat hooked")
	return p.hookToken
}

// ReleaseChatHook satisfies rwcore.CommandSender.
func (p *Player) ReleaseChatHook(token int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token == rwcore.ChatHookInvalid || token != p.hookToken {
		return false
	}
	p.hookToken = rwcore.ChatHookInvalid
	p.hook = nil
	p.log.WithField("token", token).Debug("Chat released")
	return true
}

// ChatHooked reports whether a command holds this player's chat.
func (p *Player) ChatHooked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hookToken != rwcore.ChatHookInvalid
}

func (p *Player) chatHook() rwcore.ChatHookFunc {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hook
}

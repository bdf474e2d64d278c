//go:generate go run go.uber.org/mock/mockgen -source=rwcore.go -destination=../mocks/mock_rwcore.go -package=mocks

// Package rwcore describes the plugin interface published by the RozWorld
// server. A plugin never implements a server itself: it is handed a Server
// when constructed and talks to it for logging, command registration and
// messaging. Chat hooks are leased from the sender whose chat is wanted.
package rwcore

// ChatHookInvalid is the token returned by HookChatToCallback when the
// sender's chat is already hooked by another command.
const ChatHookInvalid = -1

// SenderKind tells who issued a command.
type SenderKind int

const (
	SenderConsole SenderKind = iota // the server itself
	SenderPlayer                    // a human player
	SenderBot                       // a local bot player
)

func (k SenderKind) String() string {
	switch k {
	case SenderConsole:
		return "console"
	case SenderPlayer:
		return "player"
	case SenderBot:
		return "bot"
	}
	return "unknown"
}

// Logger writes plugin output to the server log.
type Logger interface {
	Out(text string)
}

// CommandSender is anything that can issue a command or chat: a player, a
// bot or the server console.
type CommandSender interface {
	Name() string
	Kind() SenderKind
	SendMessage(text string)

	// HookChatToCallback routes the sender's next chat messages to handler
	// instead of the server chat. It returns a token for ReleaseChatHook, or
	// ChatHookInvalid if another command already hooked this sender.
	HookChatToCallback(handler ChatHookFunc) int

	// ReleaseChatHook gives the lease identified by token back.
	ReleaseChatHook(token int) bool
}

// CommandFunc handles a registered command. Returning false tells the server
// the command failed, usually so it can print the usage line.
type CommandFunc func(sender CommandSender, args []string) bool

// ChatHookFunc receives the hooked sender's chat. The result reports
// whether the message was handled.
type ChatHookFunc func(sender CommandSender, message string) bool

// Server is the host side of the plugin contract.
type Server interface {
	// Logger returns the log the plugin should write to.
	Logger() Logger

	// RegisterCommand adds a chat command. It is only honoured while the
	// server is dispatching the Starting event.
	RegisterCommand(name string, handler CommandFunc, helpText, usage string) bool

	// BroadcastMessage sends text to everybody connected.
	BroadcastMessage(text string)
}

// Plugin is what a server loads. Starting and Stopping are each called once.
// Name, Description and Version are informative, for server admins.
type Plugin interface {
	Name() string
	Description() string
	Version() string
	Starting()
	Stopping()
}

// Factory builds a plugin bound to srv.
type Factory func(srv Server) Plugin

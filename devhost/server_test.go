package devhost

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/anorb/rwplugin/mocks"
	"github.com/anorb/rwplugin/rwcore"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// funcPlugin runs the given functions as lifecycle events.
type funcPlugin struct {
	starting func()
	stopping func()
}

func (p *funcPlugin) Name() string        { return "func" }
func (p *funcPlugin) Description() string { return "Runs functions." }
func (p *funcPlugin) Version() string     { return "0.0.1" }

func (p *funcPlugin) Starting() {
	if p.starting != nil {
		p.starting()
	}
}

func (p *funcPlugin) Stopping() {
	if p.stopping != nil {
		p.stopping()
	}
}

func newTestServer() *Server {
	return New(DefaultConfig(), io.Discard)
}

func TestServer_Lifecycle_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	plugin := mocks.NewMockPlugin(ctrl)
	plugin.EXPECT().Name().Return("mock").AnyTimes()
	plugin.EXPECT().Description().Return("A mock plugin.").AnyTimes()
	plugin.EXPECT().Version().Return("1.2.3").AnyTimes()
	srv := newTestServer()

	// Given nothing is loaded, nothing can start
	req.ErrorIs(srv.Start(), ErrNoPlugin)
	req.ErrorIs(srv.Stop(), ErrNotStarted)

	var got rwcore.Server
	req.NoError(srv.Load(func(s rwcore.Server) rwcore.Plugin {
		got = s
		return plugin
	}))
	req.Same(srv, got)
	req.ErrorIs(srv.Load(func(rwcore.Server) rwcore.Plugin { return plugin }), ErrAlreadyLoaded)

	// When started and stopped, each event fires exactly once
	gomock.InOrder(
		plugin.EXPECT().Starting().Times(1),
		plugin.EXPECT().Stopping().Times(1),
	)
	req.NoError(srv.Start())
	req.ErrorIs(srv.Start(), ErrStarted)
	req.NoError(srv.Stop())
	req.ErrorIs(srv.Stop(), ErrStopped)
}

func TestServer_Load_Logs_Plugin_Details(t *testing.T) {
	req := require.New(t)
	var logOut bytes.Buffer
	srv := New(DefaultConfig(), &logOut)

	req.NoError(srv.Load(func(rwcore.Server) rwcore.Plugin { return &funcPlugin{} }))

	req.Contains(logOut.String(), "Plugin loaded")
	req.Contains(logOut.String(), "version=0.0.1")
	req.Contains(logOut.String(), `description="Runs functions."`)
}

func TestServer_RegisterCommand_Only_While_Starting(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	handler := func(rwcore.CommandSender, []string) bool { return true }

	var inside, duplicate, clash bool
	req.NoError(srv.Load(func(s rwcore.Server) rwcore.Plugin {
		return &funcPlugin{starting: func() {
			inside = s.RegisterCommand("Ping", handler, "Pong.", "/ping")
			duplicate = s.RegisterCommand("ping", handler, "Pong.", "/ping")
			clash = s.RegisterCommand("help", handler, "", "")
		}}
	}))

	// Before Starting nothing registers
	req.False(srv.RegisterCommand("early", handler, "", ""))

	req.NoError(srv.Start())
	req.True(inside)
	req.False(duplicate)
	req.False(clash)

	// After Starting nothing registers either
	req.False(srv.RegisterCommand("late", handler, "", ""))
}

func TestServer_Dispatch_Commands(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var gotArgs []string
	req.NoError(srv.Load(func(s rwcore.Server) rwcore.Plugin {
		return &funcPlugin{starting: func() {
			s.RegisterCommand("echo", func(sender rwcore.CommandSender, args []string) bool {
				gotArgs = args
				if len(args) == 0 {
					return false
				}
				sender.SendMessage("echo from " + sender.Name())
				return true
			}, "Echoes.", "/echo <text>")
		}}
	}))
	req.NoError(srv.Start())
	var out bytes.Buffer
	steve := srv.Join("Steve", &out)

	srv.Dispatch(steve, "  /ECHO a  b ")
	req.Equal([]string{"a", "b"}, gotArgs)
	req.Contains(out.String(), "echo from Steve")

	srv.Dispatch(steve, "/echo")
	req.Contains(out.String(), "Usage: /echo <text>")

	srv.Dispatch(steve, "/nope")
	req.Contains(out.String(), DefaultConfig().UnknownCommandMessage)
}

func TestServer_Help_Lists_Commands(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	req.NoError(srv.Load(func(s rwcore.Server) rwcore.Plugin {
		return &funcPlugin{starting: func() {
			s.RegisterCommand("hello", func(rwcore.CommandSender, []string) bool { return true }, "Says hello to you.", "/hello")
		}}
	}))
	req.NoError(srv.Start())
	var out bytes.Buffer
	steve := srv.Join("Steve", &out)

	srv.Dispatch(steve, "/help")

	req.Contains(out.String(), "Says hello to you.")
	req.Contains(out.String(), "Lists the available commands.")
}

func TestServer_Chat_Broadcasts_Without_Hook(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var steveOut, alexOut bytes.Buffer
	steve := srv.Join("Steve", &steveOut)
	alex := srv.Join("Alex", &alexOut)

	srv.Dispatch(steve, "hi all")

	req.Contains(steveOut.String(), "Steve: hi all")
	req.Contains(alexOut.String(), "Steve: hi all")

	// A player that left hears nothing more
	srv.Leave(alex)
	srv.Dispatch(steve, "bye")
	req.NotContains(alexOut.String(), "bye")
}

func TestServer_Chat_Hook_Lease(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var out bytes.Buffer
	steve := srv.Join("Steve", &out)

	var heard []string
	hook := func(sender rwcore.CommandSender, message string) bool {
		heard = append(heard, sender.Name()+":"+message)
		return true
	}

	// Given a first hook is granted
	token := steve.HookChatToCallback(hook)
	req.NotEqual(rwcore.ChatHookInvalid, token)
	req.True(steve.ChatHooked())

	// Then a second one is denied
	req.Equal(rwcore.ChatHookInvalid, steve.HookChatToCallback(hook))
	req.Equal(rwcore.ChatHookInvalid, steve.HookChatToCallback(nil))

	// And chat goes to the hook instead of everyone
	srv.Dispatch(steve, "secret")
	req.Equal([]string{"Steve:secret"}, heard)
	req.NotContains(out.String(), "secret")

	// Releasing needs the right token
	req.False(steve.ReleaseChatHook(token + 1))
	req.False(steve.ReleaseChatHook(rwcore.ChatHookInvalid))
	req.True(steve.ReleaseChatHook(token))
	req.False(steve.ChatHooked())

	// And the next lease gets a fresh token
	next := steve.HookChatToCallback(hook)
	req.Greater(next, token)
}

func TestServer_Chat_Hooks_Are_Per_Player(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var steveOut, alexOut bytes.Buffer
	steve := srv.Join("Steve", &steveOut)
	alex := srv.Join("Alex", &alexOut)

	var heard []string
	hook := func(sender rwcore.CommandSender, message string) bool {
		heard = append(heard, sender.Name()+":"+message)
		return true
	}

	// Given Steve's chat is hooked
	steveToken := steve.HookChatToCallback(hook)
	req.NotEqual(rwcore.ChatHookInvalid, steveToken)

	// When Alex chats
	srv.Dispatch(alex, "hello everyone")

	// Then Alex's line reaches everybody and skips Steve's hook
	req.Empty(heard)
	req.Contains(steveOut.String(), "Alex: hello everyone")
	req.Contains(alexOut.String(), "Alex: hello everyone")

	// And Alex can take a hook of their own
	alexToken := alex.HookChatToCallback(hook)
	req.NotEqual(rwcore.ChatHookInvalid, alexToken)
	req.NotEqual(steveToken, alexToken)

	// Steve's token does not release Alex
	req.False(alex.ReleaseChatHook(steveToken))

	srv.Dispatch(steve, "one")
	srv.Dispatch(alex, "two")
	req.Equal([]string{"Steve:one", "Alex:two"}, heard)
}

func TestServer_Chat_Hook_Releases_Itself(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var out bytes.Buffer
	steve := srv.Join("Steve", &out)

	var token int
	token = steve.HookChatToCallback(func(sender rwcore.CommandSender, message string) bool {
		req.True(sender.ReleaseChatHook(token))
		return true
	})

	srv.Dispatch(steve, "answer")
	req.False(steve.ChatHooked())

	srv.Dispatch(steve, "back to chat")
	req.Contains(out.String(), "Steve: back to chat")
}

func TestServer_Chat_Hook_Can_Pass_Lines_On(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var out bytes.Buffer
	steve := srv.Join("Steve", &out)

	steve.HookChatToCallback(func(_ rwcore.CommandSender, message string) bool {
		return message != "let this through"
	})

	srv.Dispatch(steve, "keep this")
	srv.Dispatch(steve, "let this through")

	req.NotContains(out.String(), "keep this")
	req.Contains(out.String(), "Steve: let this through")
}

func TestServer_Sender_Kinds(t *testing.T) {
	req := require.New(t)
	srv := newTestServer()
	var consoleOut, botOut, steveOut bytes.Buffer

	console := srv.Console(&consoleOut)
	bot := srv.JoinBot("Robo", &botOut)
	steve := srv.Join("Steve", &steveOut)

	req.Equal(rwcore.SenderConsole, console.Kind())
	req.Equal(rwcore.SenderBot, bot.Kind())
	req.Equal(rwcore.SenderPlayer, steve.Kind())
	req.Same(console, srv.Console(io.Discard))

	// The console is not a player and hears no broadcasts
	srv.BroadcastMessage("news")
	req.NotContains(consoleOut.String(), "news")
	req.Contains(botOut.String(), "news")
	req.Contains(steveOut.String(), "news")
}

func TestServer_Logger_Writes_Log(t *testing.T) {
	req := require.New(t)
	var logOut bytes.Buffer
	srv := New(DefaultConfig(), &logOut)

	srv.Logger().Out("INFO: [test] hello log")

	req.Contains(logOut.String(), "hello log")
}

func TestServer_Logger_Routes_Errors(t *testing.T) {
	req := require.New(t)
	var logOut bytes.Buffer
	srv := New(DefaultConfig(), &logOut)

	srv.Logger().Out("ERR: [test] it broke")
	srv.Logger().Out("INFO: [test] all good")

	lines := strings.Split(strings.TrimSpace(logOut.String()), "\n")
	req.Len(lines, 2)
	req.Contains(lines[0], "level=error")
	req.Contains(lines[0], "it broke")
	req.Contains(lines[1], "level=info")
}

package rwplugin

import "errors"

var (
	// ErrChatHookDenied is returned when the sender's chat is already hooked.
	ErrChatHookDenied = errors.New("chat hook is held by someone else")
	// ErrChatHookNotHeld is returned when releasing a hook nobody took.
	ErrChatHookNotHeld = errors.New("chat hook is not held")
	// ErrCommandRejected is returned when the server refuses a command.
	ErrCommandRejected = errors.New("command registration rejected")
	// ErrNoMessages is returned when there is nothing to broadcast.
	ErrNoMessages = errors.New("no broadcast messages configured")
	// ErrBadInterval is returned for a broadcast interval below one second.
	ErrBadInterval = errors.New("broadcast interval must be at least one second")
)

package rwplugin

import (
	"sync"

	"github.com/anorb/rwplugin/rwcore"
)

// ChatHook keeps the tokens one command obtained when hooking senders'
// chat. Each sender has its own lease. The zero value is not usable, use
// NewChatHook.
type ChatHook struct {
	mu     sync.Mutex
	tokens map[rwcore.CommandSender]int
}

// NewChatHook returns a ChatHook that holds nothing.
func NewChatHook() *ChatHook {
	return &ChatHook{tokens: make(map[rwcore.CommandSender]int)}
}

// Acquire asks sender for its chat hook and routes its chat to fn while
// the lease is held.
func (h *ChatHook) Acquire(sender rwcore.CommandSender, fn rwcore.ChatHookFunc) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, held := h.tokens[sender]; held {
		return ErrChatHookDenied
	}
	token := sender.HookChatToCallback(fn)
	if token == rwcore.ChatHookInvalid {
		return ErrChatHookDenied
	}
	h.tokens[sender] = token
	return nil
}

// Release hands the sender's lease back. The token is forgotten even if the
// sender no longer recognised it. It is safe to call from inside the hook
// callback.
func (h *ChatHook) Release(sender rwcore.CommandSender) error {
	h.mu.Lock()
	token, held := h.tokens[sender]
	delete(h.tokens, sender)
	h.mu.Unlock()

	if !held {
		return ErrChatHookNotHeld
	}
	sender.ReleaseChatHook(token)
	return nil
}

// ReleaseAll hands every lease back and returns how many there were.
func (h *ChatHook) ReleaseAll() int {
	h.mu.Lock()
	tokens := h.tokens
	h.tokens = make(map[rwcore.CommandSender]int)
	h.mu.Unlock()

	for sender, token := range tokens {
		sender.ReleaseChatHook(token)
	}
	return len(tokens)
}

// Held reports whether sender's chat is hooked by this command.
func (h *ChatHook) Held(sender rwcore.CommandSender) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, held := h.tokens[sender]
	return held
}

// Count returns the number of senders currently hooked.
func (h *ChatHook) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.tokens)
}

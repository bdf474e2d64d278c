package rwplugin

import (
	"math/rand"
	"sync"
	"time"

	"github.com/anorb/rwplugin/rwcore"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
)

// Broadcaster periodically sends one of its messages to the whole server.
type Broadcaster struct {
	srv rwcore.Server
	log *Logger

	mu       sync.Mutex
	messages []string
	interval time.Duration
	rnd      *rand.Rand
	enabled  bool
	cron     *cron.Cron
	entry    cron.EntryID
}

// NewBroadcaster builds a stopped Broadcaster. src drives the choice of
// message so callers can make it deterministic.
func NewBroadcaster(srv rwcore.Server, log *Logger, cfg BroadcastConfig, src rand.Source) *Broadcaster {
	return &Broadcaster{
		srv:      srv,
		log:      log,
		messages: append([]string(nil), cfg.Messages...),
		interval: time.Duration(cfg.Interval) * time.Second,
		rnd:      rand.New(src),
		enabled:  cfg.Enabled,
	}
}

// Start schedules the broadcast. Calling it again while running does
// nothing.
func (b *Broadcaster) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cron != nil {
		return
	}
	b.cron = cron.New(cron.WithLocation(time.UTC))
	b.entry = b.cron.Schedule(cron.Every(b.interval), cron.FuncJob(b.tick))
	b.cron.Start()
	b.log.Info("Broadcaster started, interval", b.interval)
}

// Stop removes the schedule and waits for a broadcast in flight.
func (b *Broadcaster) Stop() {
	b.mu.Lock()
	c := b.cron
	b.cron = nil
	b.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	b.log.Info("Broadcaster stopped")
}

// Running reports whether a schedule is active.
func (b *Broadcaster) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cron != nil
}

// Interval returns the time between broadcasts.
func (b *Broadcaster) Interval() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.interval
}

// SetInterval changes the time between broadcasts. A running schedule is
// replaced, so the next broadcast is d from now.
func (b *Broadcaster) SetInterval(d time.Duration) error {
	if d < time.Second {
		return ErrBadInterval
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.interval = d
	if b.cron != nil {
		b.cron.Remove(b.entry)
		b.entry = b.cron.Schedule(cron.Every(d), cron.FuncJob(b.tick))
	}
	b.log.Info("Broadcast interval set to", d)
	return nil
}

// SetEnabled toggles broadcasting without touching the schedule. Enabling
// a broadcaster with nothing to say fails with ErrNoMessages.
func (b *Broadcaster) SetEnabled(enabled bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if enabled && len(b.messages) == 0 {
		return ErrNoMessages
	}
	b.enabled = enabled
	return nil
}

// Toggle flips the enabled flag and returns the new state.
func (b *Broadcaster) Toggle() (bool, error) {
	b.mu.Lock()
	enabled := !b.enabled
	b.mu.Unlock()

	if err := b.SetEnabled(enabled); err != nil {
		return !enabled, err
	}
	return enabled, nil
}

// Enabled reports whether ticks currently broadcast.
func (b *Broadcaster) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// AddMessages appends messages that are not already known.
func (b *Broadcaster) AddMessages(messages ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = lo.Uniq(append(b.messages, messages...))
}

// Messages returns a copy of the messages to pick from.
func (b *Broadcaster) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.messages...)
}

// Broadcast picks a random message and sends it. A disabled broadcaster
// returns an empty message and no error.
func (b *Broadcaster) Broadcast() (string, error) {
	b.mu.Lock()
	if !b.enabled {
		b.mu.Unlock()
		return "", nil
	}
	if len(b.messages) == 0 {
		b.mu.Unlock()
		return "", ErrNoMessages
	}
	msg := lo.SampleBy(b.messages, b.rnd.Intn)
	b.mu.Unlock()

	b.srv.BroadcastMessage(msg)
	return msg, nil
}

func (b *Broadcaster) tick() {
	if _, err := b.Broadcast(); err != nil {
		b.log.Error("Broadcast failed -", err)
	}
}

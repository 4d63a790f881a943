package poller

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is how often the feed is polled.
const DefaultInterval = 10 * time.Second

// Poller watches the unread count on a fixed interval and fires
// OnNewActivity when it grows.
//
// The new-activity signal is a count delta, not per-notification
// identity tracking: it can miss an arrival that coincides with a read
// elsewhere, and a re-poll after marking entries read can fire without
// a genuinely new entry. Callers wanting exact novelty detection must
// diff notification ids themselves.
type Poller struct {
	client   *Client
	interval time.Duration
	state    *SoundState

	// OnNewActivity receives the current unread count whenever it
	// exceeds the previously observed count. Suppressed while the
	// sound toggle is off.
	OnNewActivity func(ctx context.Context, unread int)

	// OnError receives poll failures. Polling continues regardless.
	OnError func(err error)

	mu       sync.Mutex
	lastSeen int
	primed   bool
}

// Option customizes a Poller.
type Option func(*Poller)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithSoundState attaches a persisted sound toggle. When set and
// disabled, OnNewActivity is not fired.
func WithSoundState(state *SoundState) Option {
	return func(p *Poller) {
		p.state = state
	}
}

// New builds a Poller around an existing feed client.
func New(client *Client, opts ...Option) *Poller {
	p := &Poller{
		client:   client,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until ctx is canceled. The first poll happens immediately
// and only records the baseline; deltas are reported from the second
// poll onward.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Unread returns the most recently observed unread count.
func (p *Poller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

func (p *Poller) tick(ctx context.Context) {
	count, err := p.client.UnreadCount(ctx)
	if err != nil {
		if p.OnError != nil && ctx.Err() == nil {
			p.OnError(err)
		}
		return
	}

	p.mu.Lock()
	grew := p.primed && count > p.lastSeen
	p.lastSeen = count
	p.primed = true
	p.mu.Unlock()

	if grew && p.OnNewActivity != nil && (p.state == nil || p.state.Enabled) {
		p.OnNewActivity(ctx, count)
	}
}

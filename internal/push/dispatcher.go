// Package push delivers web push notifications to registered browser
// endpoints using VAPID, and keeps the subscription registry self-healing:
// endpoints the push service reports as gone are deleted on the spot.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/pkg/worker"
)

// Default asset paths delivered to the browser's push handler.
const (
	defaultIcon  = "/icons/icon-192.png"
	defaultBadge = "/icons/badge-72.png"
	defaultTag   = "crewpulse"
)

// PayloadData carries deep-link metadata for the client push handler.
type PayloadData struct {
	URL       string `json:"url,omitempty"`
	Type      string `json:"type,omitempty"`
	RelatedID string `json:"relatedId,omitempty"`
}

// Payload is the JSON message body delivered to each endpoint.
type Payload struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Icon  string      `json:"icon"`
	Badge string      `json:"badge"`
	Tag   string      `json:"tag"`
	Data  PayloadData `json:"data"`
}

// withDefaults fills in the fixed icon/badge/tag assets when unset.
func (p Payload) withDefaults() Payload {
	if p.Icon == "" {
		p.Icon = defaultIcon
	}
	if p.Badge == "" {
		p.Badge = defaultBadge
	}
	if p.Tag == "" {
		p.Tag = defaultTag
	}
	return p
}

// Result counts per-endpoint outcomes of a fan-out.
type Result struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// PreferenceGate decides whether push may fire for a user and event kind.
// Implemented by the notification channel gate.
type PreferenceGate interface {
	ShouldSendPush(ctx context.Context, userID, eventKind string) bool
}

// SendFunc performs one push transport call and returns the HTTP status
// reported by the push service. Swappable for tests.
type SendFunc func(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error)

func defaultSend(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
	resp, err := webpush.SendNotificationWithContext(ctx, message, sub, opts)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Dispatcher fans a push payload out to all of a user's registered
// endpoints. Endpoints are independent: one dead device never blocks
// delivery to the others.
type Dispatcher struct {
	client *ent.Client
	pools  *worker.Pools
	gate   PreferenceGate
	opts   webpush.Options
	send   SendFunc
}

// NewDispatcher creates a push dispatcher.
func NewDispatcher(client *ent.Client, pools *worker.Pools, gate PreferenceGate, cfg config.PushConfig) *Dispatcher {
	return &Dispatcher{
		client: client,
		pools:  pools,
		gate:   gate,
		opts: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60,
		},
		send: defaultSend,
	}
}

// SetSendFunc replaces the transport call. Test hook.
func (d *Dispatcher) SetSendFunc(fn SendFunc) {
	d.send = fn
}

// SendToUser delivers the payload to every subscription the user has,
// concurrently. Zero subscriptions is a successful no-op, not an error.
// Endpoints reported gone (410) or not found (404) are deleted; other
// failures are counted and the subscription retained as transient.
func (d *Dispatcher) SendToUser(ctx context.Context, userID string, payload Payload) (Result, error) {
	subs, err := d.client.PushSubscription.Query().
		Where(pushsubscription.HasUserWith(entuser.ID(userID))).
		All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("query push subscriptions for user %s: %w", userID, err)
	}
	if len(subs) == 0 {
		return Result{}, nil
	}

	message, err := json.Marshal(payload.withDefaults())
	if err != nil {
		return Result{}, fmt.Errorf("marshal push payload: %w", err)
	}

	var (
		mu     sync.Mutex
		result Result
		wg     sync.WaitGroup
	)

	for _, sub := range subs {
		sub := sub
		wg.Add(1)
		task := func(taskCtx context.Context) {
			defer wg.Done()
			if taskCtx.Err() != nil {
				// Cancelled while queued; count it so the result balances.
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return
			}
			ok := d.sendToEndpoint(taskCtx, sub, message)
			mu.Lock()
			if ok {
				result.Sent++
			} else {
				result.Failed++
			}
			mu.Unlock()
		}
		if err := d.pools.Dispatch.Submit(ctx, task); err != nil {
			// Pool rejected the task (shutdown or cancelled context).
			wg.Done()
			mu.Lock()
			result.Failed++
			mu.Unlock()
			logger.Warn("push task not scheduled",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
	wg.Wait()

	return result, nil
}

// sendToEndpoint performs one transport call and prunes the subscription
// when the push service says the endpoint is gone. Returns true on success.
func (d *Dispatcher) sendToEndpoint(ctx context.Context, sub *ent.PushSubscription, message []byte) bool {
	status, err := d.send(ctx, message, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &d.opts)

	switch {
	case err != nil:
		logger.Warn("push send failed",
			zap.String("subscription_id", sub.ID),
			zap.Error(err),
		)
		return false
	case status == http.StatusGone || status == http.StatusNotFound:
		// Endpoint confirmed dead: remove it so the registry self-heals.
		if derr := d.client.PushSubscription.DeleteOneID(sub.ID).Exec(ctx); derr != nil && !ent.IsNotFound(derr) {
			logger.Warn("failed to prune dead push subscription",
				zap.String("subscription_id", sub.ID),
				zap.Error(derr),
			)
		} else {
			logger.Info("pruned dead push subscription",
				zap.String("subscription_id", sub.ID),
				zap.Int("status", status),
			)
		}
		return false
	case status >= 400:
		logger.Warn("push service rejected message",
			zap.String("subscription_id", sub.ID),
			zap.Int("status", status),
		)
		return false
	default:
		return true
	}
}

// SendToUsers delivers the payload to multiple users, summing results.
// One user's failure does not stop processing of the rest.
func (d *Dispatcher) SendToUsers(ctx context.Context, userIDs []string, payload Payload) Result {
	var total Result
	for _, userID := range userIDs {
		res, err := d.SendToUser(ctx, userID, payload)
		if err != nil {
			logger.Error("push fan-out failed for user",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		total.Sent += res.Sent
		total.Failed += res.Failed
	}
	return total
}

// SendIfEnabled composes the preference gate with the raw sender.
// Returns false without attempting delivery when the gate denies;
// returns true iff at least one endpoint succeeded.
func (d *Dispatcher) SendIfEnabled(ctx context.Context, userID, eventKind string, payload Payload) (bool, error) {
	if d.gate != nil && !d.gate.ShouldSendPush(ctx, userID, eventKind) {
		return false, nil
	}
	res, err := d.SendToUser(ctx, userID, payload)
	if err != nil {
		return false, err
	}
	return res.Sent > 0, nil
}

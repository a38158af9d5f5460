// Package realtime tracks at most one live push subscriber per shopping
// session and delivers cart snapshots to it. The channel is best-effort and
// non-durable: the authoritative cart state always remains queryable from
// the store, so dropped deliveries are never an error.
package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/checkout"
	"go.uber.org/zap"
)

// Pusher delivers one cart snapshot to a subscriber
type Pusher interface {
	PushCart(snapshot checkout.CartSnapshot) error
}

// Registry maps a session id to its single live subscriber. A new subscriber
// for the same session replaces the old one (last writer wins); there is no
// fan-out and no queuing of missed updates.
//
// The registry is an owned, lifecycle-scoped instance passed to whoever
// needs it, not process-wide state. Entries for different session ids never
// block each other.
type Registry struct {
	subscribers sync.Map // uuid.UUID -> Pusher
	logger      *zap.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger.Named("realtime")}
}

// Subscribe registers the pusher as the subscriber for the session,
// replacing any prior subscriber for that id. Subscribing does not push a
// snapshot; the subscriber only sees updates published afterwards.
func (r *Registry) Subscribe(sessionID uuid.UUID, p Pusher) {
	r.subscribers.Store(sessionID, p)
	r.logger.Debug("Subscriber registered", zap.String("session_id", sessionID.String()))
}

// Unsubscribe removes the mapping, but only while p is still the registered
// subscriber: a replaced subscriber's deferred cleanup must not evict its
// replacement. Idempotent no-op when no mapping exists.
func (r *Registry) Unsubscribe(sessionID uuid.UUID, p Pusher) {
	if r.subscribers.CompareAndDelete(sessionID, p) {
		r.logger.Debug("Subscriber removed", zap.String("session_id", sessionID.String()))
	}
}

// Publish delivers the snapshot to the session's subscriber if one exists,
// and silently drops it otherwise. Delivery failure is swallowed, not
// retried, and does not unsubscribe; the transport layer unsubscribes when
// it detects closure.
func (r *Registry) Publish(sessionID uuid.UUID, snapshot checkout.CartSnapshot) {
	value, ok := r.subscribers.Load(sessionID)
	if !ok {
		return
	}

	if err := value.(Pusher).PushCart(snapshot); err != nil {
		r.logger.Debug("Push delivery failed",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
	}
}

// Len reports the number of live subscriptions
func (r *Registry) Len() int {
	n := 0
	r.subscribers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

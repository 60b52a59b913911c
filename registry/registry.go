// Package registry provides the process-wide catalog of industry packs.
//
// The Registry is the single source of truth for which packs exist at
// runtime. Registration and update run structural validation before any
// state changes (all-or-nothing), and every successful mutation emits a
// change event to subscribers. Reads never fail: absent packs yield
// zero values, never errors.
//
// Like the rest of the platform, registration is EXPLICIT: callers
// construct a Registry (or use Default()) and register packs themselves.
// There is no init() self-registration, which keeps tests isolated and
// the pack dependency graph visible in main.
package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/metric"
	"github.com/efeecllk/game-insights-sub001/pack"
)

// EventType tags a registry change event
type EventType string

// Registry change event types
const (
	EventRegistered   EventType = "registered"
	EventUnregistered EventType = "unregistered"
	EventUpdated      EventType = "updated"
)

// Event describes one registry mutation. Pack is nil for unregistration.
type Event struct {
	Type   EventType          `json:"type"`
	PackID pack.Industry      `json:"packId"`
	Pack   *pack.IndustryPack `json:"pack,omitempty"`
}

// Listener receives registry change events. A listener returning an
// error (or panicking) is logged and counted but never interrupts
// delivery to other listeners or rolls back the triggering mutation.
type Listener func(Event) error

type subscription struct {
	id       int
	listener Listener
}

// Registry manages registered industry packs. It is safe for concurrent
// use; every mutation is a whole-pack replace-or-insert under a single
// lock, so no pack is ever observed partially updated.
type Registry struct {
	mu          sync.RWMutex
	packs       map[pack.Industry]*pack.IndustryPack
	order       []pack.Industry // registration order, drives detection tie-breaks
	subscribers []subscription
	nextSubID   int

	logger  *slog.Logger
	metrics *metric.Metrics
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for listener failure reports
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation to the registry
func WithMetrics(m *metric.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		packs:  make(map[pack.Industry]*pack.IndustryPack),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPack validates and stores a pack, then emits a registered
// event. Fails with a conflict error if the id is already present and an
// invalid error if the pack violates structural invariants; in either
// case the registry is left untouched.
func (r *Registry) RegisterPack(p *pack.IndustryPack) error {
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "Registry", "RegisterPack", "pack validation")
	}

	r.mu.Lock()
	if _, exists := r.packs[p.ID]; exists {
		r.mu.Unlock()
		return errors.WrapConflict(
			fmt.Errorf("%w: %q", errors.ErrDuplicatePack, p.ID),
			"Registry", "RegisterPack", "duplicate id check")
	}
	r.packs[p.ID] = p
	r.order = append(r.order, p.ID)
	count := len(r.packs)
	r.mu.Unlock()

	r.emit(Event{Type: EventRegistered, PackID: p.ID, Pack: p}, count)
	return nil
}

// UnregisterPack removes a pack if present and reports whether removal
// occurred. An unregistered event is emitted only when something was
// removed.
func (r *Registry) UnregisterPack(id pack.Industry) bool {
	r.mu.Lock()
	if _, exists := r.packs[id]; !exists {
		r.mu.Unlock()
		return false
	}
	delete(r.packs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	count := len(r.packs)
	r.mu.Unlock()

	r.emit(Event{Type: EventUnregistered, PackID: id}, count)
	return true
}

// UpdatePack re-validates and replaces a registered pack wholesale, then
// emits an updated event. Fails with a not-found error if the id is
// absent so callers can distinguish "unknown pack" from "malformed pack".
func (r *Registry) UpdatePack(p *pack.IndustryPack) error {
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "Registry", "UpdatePack", "pack validation")
	}

	r.mu.Lock()
	if _, exists := r.packs[p.ID]; !exists {
		r.mu.Unlock()
		return errors.WrapNotFound(
			fmt.Errorf("%w: %q", errors.ErrPackNotFound, p.ID),
			"Registry", "UpdatePack", "pack lookup")
	}
	r.packs[p.ID] = p
	count := len(r.packs)
	r.mu.Unlock()

	r.emit(Event{Type: EventUpdated, PackID: p.ID, Pack: p}, count)
	return nil
}

// GetPack returns the registered pack for an industry. The returned pack
// is the registry's own instance and must be treated as read-only.
func (r *Registry) GetPack(id pack.Industry) (*pack.IndustryPack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	return p, ok
}

// HasPack reports whether a pack is registered for the industry
func (r *Registry) HasPack(id pack.Industry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.packs[id]
	return ok
}

// AllPacks returns all registered packs in registration order
func (r *Registry) AllPacks() []*pack.IndustryPack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*pack.IndustryPack, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.packs[id])
	}
	return out
}

// RegisteredIndustries returns the ids of all registered packs in
// registration order
func (r *Registry) RegisteredIndustries() []pack.Industry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]pack.Industry(nil), r.order...)
}

// AllSemanticTypes flattens semantic types across all registered packs.
// Duplicates across packs are preserved: the same column name can
// legitimately mean different things per industry.
func (r *Registry) AllSemanticTypes() []pack.SemanticType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []pack.SemanticType
	for _, id := range r.order {
		out = append(out, r.packs[id].SemanticTypes...)
	}
	return out
}

// SemanticTypes returns the semantic types of one pack, or nil if the
// industry is not registered
func (r *Registry) SemanticTypes(id pack.Industry) []pack.SemanticType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return nil
	}
	return append([]pack.SemanticType(nil), p.SemanticTypes...)
}

// Metrics returns a pack's metrics, optionally filtered to those
// applicable to the given sub-category. Entries without sub-category
// restrictions always apply.
func (r *Registry) Metrics(id pack.Industry, subCategory string) []pack.MetricDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return nil
	}
	return p.MetricsFor(subCategory)
}

// Funnels returns a pack's funnels, optionally filtered to those
// applicable to the given sub-category
func (r *Registry) Funnels(id pack.Industry, subCategory string) []pack.FunnelTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return nil
	}
	return p.FunnelsFor(subCategory)
}

// Terminology looks up a terminology entry for an industry. The second
// return is false if the pack or the key is absent.
func (r *Registry) Terminology(id pack.Industry, key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return "", false
	}
	value, ok := p.Terminology[key]
	return value, ok
}

// Theme returns a pack's theme. The second return is false if the
// industry is not registered.
func (r *Registry) Theme(id pack.Industry) (pack.Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return pack.Theme{}, false
	}
	return p.Theme, true
}

// Subscribe registers a listener invoked synchronously, in subscription
// order, on every emitted event. The returned function removes the
// subscription; calling it more than once is harmless.
func (r *Registry) Subscribe(listener Listener) func() {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers = append(r.subscribers, subscription{id: id, listener: listener})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, sub := range r.subscribers {
			if sub.id == id {
				r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Reset clears all packs and subscriptions. This is a first-class part
// of the contract: test isolation and multi-tenant reuse both need a
// deterministic way to discard registry state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packs = make(map[pack.Industry]*pack.IndustryPack)
	r.order = nil
	r.subscribers = nil
	if r.metrics != nil {
		r.metrics.PacksRegistered.Set(0)
	}
}

// emit delivers an event to all subscribers. Each listener is isolated:
// a returned error or panic is logged and counted without affecting the
// other listeners. The mutation has already committed by the time
// listeners run.
func (r *Registry) emit(event Event, packCount int) {
	r.metrics.ObserveRegistryEvent(string(event.Type), packCount)

	r.mu.RLock()
	subs := append([]subscription(nil), r.subscribers...)
	r.mu.RUnlock()

	for _, sub := range subs {
		if err := r.dispatch(sub.listener, event); err != nil {
			r.metrics.ObserveListenerFailure()
			r.logger.Warn("registry listener failed",
				"event", string(event.Type),
				"pack", string(event.PackID),
				"error", err)
		}
	}
}

// dispatch invokes one listener, converting a panic into an error
func (r *Registry) dispatch(listener Listener, event Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("listener panic: %v", rec)
		}
	}()
	return listener(event)
}

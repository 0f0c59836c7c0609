package plugin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
)

// Query is what a handler sees for one keystroke.
type Query struct {
	Raw       string // full input, trigger included
	String    string // input after the trigger
	Triggered bool
}

type Handler interface {
	Name() string
	Trigger() string
	Handle(ctx context.Context, q Query) ([]item.Item, error)
}

// ErrDuplicateTrigger is returned when a second handler claims a trigger already in use.
var ErrDuplicateTrigger = errors.New("trigger already registered")

type Registry struct {
	byTrigger map[string]Handler
}

func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{byTrigger: map[string]Handler{}}
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds h. The first handler registered for a trigger keeps it.
func (r *Registry) Register(h Handler) error {
	if prev, ok := r.byTrigger[h.Trigger()]; ok {
		return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateTrigger, h.Trigger(), prev.Name(), h.Name())
	}
	r.byTrigger[h.Trigger()] = h
	return nil
}

// Handlers returns the registered handlers ordered by name.
func (r *Registry) Handlers() []Handler {
	out := make([]Handler, 0, len(r.byTrigger))
	for _, h := range r.byTrigger {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Match finds the handler whose trigger prefixes raw. The longest trigger wins.
func (r *Registry) Match(raw string) (Handler, Query, bool) {
	var best Handler
	for trigger, h := range r.byTrigger {
		if !strings.HasPrefix(raw, trigger) {
			continue
		}
		if best == nil || len(trigger) > len(best.Trigger()) {
			best = h
		}
	}
	if best == nil {
		return nil, Query{Raw: raw, String: raw}, false
	}
	return best, Query{Raw: raw, String: strings.TrimPrefix(raw, best.Trigger()), Triggered: true}, true
}

// Dispatch runs the matching handler. Untriggered input yields no items.
func (r *Registry) Dispatch(ctx context.Context, raw string) ([]item.Item, error) {
	h, q, ok := r.Match(raw)
	if !ok {
		return nil, nil
	}
	items, err := h.Handle(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.Name(), err)
	}
	return items, nil
}

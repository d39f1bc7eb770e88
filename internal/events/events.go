// Package events announces changes to household data so other clients know to re-fetch.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

// Change says that member modified a resource collection, e.g. "expenses".
type Change struct {
	Resource string           `json:"resource"`
	Action   Action           `json:"action"`
	Member   household.Member `json:"member"`
	At       time.Time        `json:"at"`
}

// RoutingKey is "<resource>.<action>".
func (c Change) RoutingKey() string {
	return c.Resource + "." + string(c.Action)
}

func (c Change) Encode() ([]byte, error) {
	return json.Marshal(c)
}

func Decode(body []byte) (Change, error) {
	var c Change
	if err := json.Unmarshal(body, &c); err != nil {
		return Change{}, fmt.Errorf("decoding change: %w", err)
	}

	return c, nil
}

type Publisher interface {
	Publish(ctx context.Context, c Change) error
	Close() error
}

// Noop drops every change. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Change) error { return nil }
func (Noop) Close() error                          { return nil }

// Recorder keeps published changes in memory.
type Recorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *Recorder) Publish(_ context.Context, c Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.changes = append(r.changes, c)

	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Changes() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Change(nil), r.changes...)
}

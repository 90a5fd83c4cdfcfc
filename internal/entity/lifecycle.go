package entity

import (
	"encoding/json"
	"fmt"
)

// Lifecycle is the visibility state of a listable content entry. Entries are
// never physically removed; archiving hides them from listings.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "active"
	LifecycleArchived Lifecycle = "archived"
)

// Active reports whether the entry is listed.
func (l Lifecycle) Active() bool {
	return l == LifecycleActive
}

// LifecycleFromActive converts the wire-level isActive flag.
func LifecycleFromActive(active bool) Lifecycle {
	if active {
		return LifecycleActive
	}
	return LifecycleArchived
}

// Valid reports whether l is a known state.
func (l Lifecycle) Valid() bool {
	return l == LifecycleActive || l == LifecycleArchived
}

// MarshalJSON encodes the state as the isActive boolean clients expect.
func (l Lifecycle) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Active())
}

// UnmarshalJSON accepts the isActive boolean.
func (l *Lifecycle) UnmarshalJSON(data []byte) error {
	var active bool
	if err := json.Unmarshal(data, &active); err != nil {
		return fmt.Errorf("isActive must be a boolean: %w", err)
	}
	*l = LifecycleFromActive(active)
	return nil
}

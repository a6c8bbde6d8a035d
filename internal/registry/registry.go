// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry tracks every short identifier the tool has ever issued —
// file and sheet prefixes, LOV codes, form names, template ids — and
// guarantees a string is never reissued under the same kind across runs.
// State lives in memory between explicit Flush calls; the durable store is
// read whole and written whole through an injected Backend.
// Implements: docs/ARCHITECTURE § Identifier Registry.
package registry

import (
	"fmt"
	"io"
	"sort"
)

// Kind namespaces the independent identifier sets. The values double as the
// keys of the durable document.
type Kind string

const (
	KindPrefix     Kind = "prefixes"
	KindLovCode    Kind = "lov_codes"
	KindFormName   Kind = "form_names"
	KindTemplateID Kind = "template_ids"
)

// Kinds returns all identifier kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindPrefix, KindLovCode, KindFormName, KindTemplateID}
}

// State is the durable-store exchange form: every issued identifier, grouped
// by kind. Membership matters; order does not.
type State map[Kind][]string

// Backend is a durable store for registry state. Load returns empty state
// (not an error) when no store exists yet; Save replaces the whole document
// and must be atomic from the caller's point of view.
type Backend interface {
	Load() (State, error)
	Save(State) error
}

// Registry is the in-memory working set over a Backend.
type Registry struct {
	backend Backend
	sets    map[Kind]map[string]bool
}

// Open loads the backend's state into a new Registry. A corrupt store is
// logged to w and replaced with empty sets: losing history is acceptable,
// refusing to start is not.
func Open(backend Backend, w io.Writer) *Registry {
	r := &Registry{
		backend: backend,
		sets:    map[Kind]map[string]bool{},
	}
	for _, kind := range Kinds() {
		r.sets[kind] = map[string]bool{}
	}

	state, err := backend.Load()
	if err != nil {
		fmt.Fprintf(w, "warning: identifier registry unreadable, starting empty: %v\n", err)
		return r
	}
	for kind, values := range state {
		if r.sets[kind] == nil {
			r.sets[kind] = map[string]bool{}
		}
		for _, v := range values {
			r.sets[kind][v] = true
		}
	}
	return r
}

// Reserve records candidate under kind and reports whether it was free. A
// false return means the candidate was already issued — by this process or
// any earlier run — and the caller must pick another. Pure in-memory
// operation; durability requires Flush.
func (r *Registry) Reserve(kind Kind, candidate string) bool {
	set := r.sets[kind]
	if set == nil {
		set = map[string]bool{}
		r.sets[kind] = set
	}
	if set[candidate] {
		return false
	}
	set[candidate] = true
	return true
}

// Contains reports whether candidate is already issued under kind.
func (r *Registry) Contains(kind Kind, candidate string) bool {
	return r.sets[kind][candidate]
}

// Count returns the number of identifiers issued under kind.
func (r *Registry) Count(kind Kind) int {
	return len(r.sets[kind])
}

// List returns the identifiers issued under kind, sorted.
func (r *Registry) List(kind Kind) []string {
	out := make([]string, 0, len(r.sets[kind]))
	for v := range r.sets[kind] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Flush persists the current state. On failure the in-memory state is
// retained so newly reserved identifiers survive for a retry.
func (r *Registry) Flush() error {
	if err := r.backend.Save(r.snapshot()); err != nil {
		return fmt.Errorf("flushing identifier registry: %w", err)
	}
	return nil
}

func (r *Registry) snapshot() State {
	state := State{}
	for _, kind := range Kinds() {
		state[kind] = r.List(kind)
	}
	return state
}

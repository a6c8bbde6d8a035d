// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

// MemoryBackend is a volatile Backend for tests and dry runs. SaveErr, when
// set, makes Save fail so flush-failure handling can be exercised.
type MemoryBackend struct {
	Saved   State
	SaveErr error
}

// Load returns the last saved state, or empty state for a fresh backend.
func (b *MemoryBackend) Load() (State, error) {
	if b.Saved == nil {
		return State{}, nil
	}
	return b.Saved, nil
}

// Save keeps a copy of the state in memory.
func (b *MemoryBackend) Save(state State) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	saved := State{}
	for kind, values := range state {
		saved[kind] = append([]string(nil), values...)
	}
	b.Saved = saved
	return nil
}

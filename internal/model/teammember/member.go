package teammember

import "errors"

// ErrNotImplemented is returned by stores that do not accept writes yet.
var ErrNotImplemented = errors.New("team member store not implemented")

// TeamMember has no schema while persistence is disabled.
type TeamMember struct{}

// Store exposes team member retrieval and creation for HTTP handlers.
type Store interface {
	List() []TeamMember
	Create(member TeamMember) (TeamMember, error)
}

// DisabledStore stands in until a database is wired up: it holds nothing and
// rejects every write.
type DisabledStore struct{}

// NewDisabledStore returns the placeholder store.
func NewDisabledStore() DisabledStore {
	return DisabledStore{}
}

// List always returns an empty, non-nil slice.
func (DisabledStore) List() []TeamMember {
	return []TeamMember{}
}

// Create always fails with ErrNotImplemented.
func (DisabledStore) Create(TeamMember) (TeamMember, error) {
	return TeamMember{}, ErrNotImplemented
}

package category

// Store exposes category retrieval for HTTP handlers.
type Store interface {
	List() []Category
	FindBySlug(slug string) (Category, bool)
}

// MemoryStore implements Store with an in-memory slice. It is read-only after
// construction.
type MemoryStore struct {
	items []Category
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied categories.
func NewMemoryStore(items []Category) *MemoryStore {
	return &MemoryStore{items: append([]Category(nil), items...)}
}

// List returns a copy of the categories in their original order.
func (s *MemoryStore) List() []Category {
	return append([]Category{}, s.items...)
}

// FindBySlug looks up a category by slug.
func (s *MemoryStore) FindBySlug(slug string) (Category, bool) {
	for _, item := range s.items {
		if item.Slug == slug {
			return item, true
		}
	}
	return Category{}, false
}

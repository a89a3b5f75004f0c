package memory

import (
	"errors"
	"time"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/events"
)

// ErrNotFound is returned by update and delete operations that target an
// id not present in the collection
var ErrNotFound = errors.New("not found")

// Store provides in-memory storage for the five collections. It is the
// sole mutator of the collections; all derived values are recomputed from
// the current state on every call.
type Store struct {
	projects  []*entities.Project
	phases    []*entities.Phase
	materials []*entities.Material
	movements []*entities.StockMovement
	purchases []*entities.Purchase

	notifier *events.Bus
	now      func() time.Time
}

// NewStore creates a new empty in-memory store
func NewStore() *Store {
	return NewStoreWithNotifier(nil)
}

// NewStoreWithNotifier creates a store whose cross-entity operations
// publish notifications on the given bus. A nil bus disables publishing.
func NewStoreWithNotifier(notifier *events.Bus) *Store {
	return &Store{
		projects:  []*entities.Project{},
		phases:    []*entities.Phase{},
		materials: []*entities.Material{},
		movements: []*entities.StockMovement{},
		purchases: []*entities.Purchase{},
		notifier:  notifier,
		now:       time.Now,
	}
}

// Verify interface compliance
var _ repositories.Store = (*Store)(nil)

// Snapshot returns a point-in-time copy of the five collections
func (s *Store) Snapshot() repositories.Snapshot {
	return repositories.Snapshot{
		Projects:  append([]*entities.Project(nil), s.projects...),
		Phases:    append([]*entities.Phase(nil), s.phases...),
		Materials: append([]*entities.Material(nil), s.materials...),
		Movements: append([]*entities.StockMovement(nil), s.movements...),
		Purchases: append([]*entities.Purchase(nil), s.purchases...),
	}
}

func (s *Store) publish(n events.Notification) {
	if s.notifier != nil {
		s.notifier.Publish(n)
	}
}

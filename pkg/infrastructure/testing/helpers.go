// Package testing provides shared fixtures for store and service tests.
package testing

import (
	"fmt"

	"github.com/aneliseestevam/structa-web/pkg/infrastructure/events"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/repositories/memory"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/seed"
)

// BuildConstructionTestData builds a store primed with the canonical
// dataset and a notification bus wired into it: three projects across
// the three lifecycle states, four phases, four materials with one
// low-stock item, two movements and one delivered purchase.
func BuildConstructionTestData() (*memory.Store, *events.Bus, error) {
	bus := events.NewBus()
	store := memory.NewStoreWithNotifier(bus)
	if err := seed.Populate(store); err != nil {
		return nil, nil, fmt.Errorf("populate test store: %w", err)
	}
	return store, bus, nil
}

package ports

import "context"

// InventoryProvider produces the list of source package names to resolve.
// Output is deduplicated, sorted and free of empty names, so batch runs over
// the same inventory are deterministic.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type InventoryProvider interface {
	// Packages returns the package inventory.
	Packages(ctx context.Context) ([]string, error)
}

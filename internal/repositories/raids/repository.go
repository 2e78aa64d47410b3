// Package raids provides read access to the raid catalog
package raids

//go:generate mockgen -destination=mock/mock_repository.go -package=raidsmock github.com/KirkDiggler/raid-gold-api/internal/repositories/raids Repository

import (
	"context"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// ListInput has no parameters; the catalog is small and always returned whole
type ListInput struct{}

// ListOutput contains every raid in the catalog ordered by ID
type ListOutput struct {
	Raids []*entities.RaidDefinition
}

// Repository defines read operations on the raid catalog
type Repository interface {
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

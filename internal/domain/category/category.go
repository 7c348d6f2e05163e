// Package category holds the minimal category model the video catalog
// depends on. The full category lifecycle (validation rules, pagination,
// REST shaping) lives outside this service.
package category

import (
	"context"
	"time"
)

// Category is one catalog category.
type Category struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the category persistence port. The video flows only need
// the existence check; Create exists for provisioning and tests.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	// ExistsByIDs returns the subset of ids that exist, in no guaranteed
	// order.
	ExistsByIDs(ctx context.Context, ids []string) ([]string, error)
}

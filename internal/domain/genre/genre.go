// Package genre holds the minimal genre model the video catalog depends on.
package genre

import (
	"context"
	"time"
)

// Genre is one catalog genre.
type Genre struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the genre persistence port.
type Repository interface {
	Create(ctx context.Context, g *Genre) error
	// ExistsByIDs returns the subset of ids that exist.
	ExistsByIDs(ctx context.Context, ids []string) ([]string, error)
}

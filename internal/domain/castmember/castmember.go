// Package castmember holds the minimal cast member model the video catalog
// depends on.
package castmember

import (
	"context"
	"time"
)

// Type distinguishes the roles a cast member can have.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// CastMember is one actor or director referenced by catalog titles.
type CastMember struct {
	ID        string
	Name      string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the cast member persistence port.
type Repository interface {
	Create(ctx context.Context, m *CastMember) error
	// ExistsByIDs returns the subset of ids that exist.
	ExistsByIDs(ctx context.Context, ids []string) ([]string, error)
}

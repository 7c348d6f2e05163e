package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dotflix/catalog/internal/domain/castmember"
	"github.com/dotflix/catalog/internal/domain/category"
	"github.com/dotflix/catalog/internal/domain/genre"
)

// CategoryRepository persists categories and answers the existence checks
// the video flows depend on.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category row.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{ID: c.ID, Name: c.Name, Active: c.Active}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating category %s: %w", c.ID, err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids present in the categories table.
func (r *CategoryRepository) ExistsByIDs(ctx context.Context, ids []string) ([]string, error) {
	return existsByIDs(ctx, r.db, &CategoryModel{}, ids)
}

// GenreRepository persists genres.
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a genre repository.
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create inserts a new genre row.
func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{ID: g.ID, Name: g.Name, Active: g.Active}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating genre %s: %w", g.ID, err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids present in the genres table.
func (r *GenreRepository) ExistsByIDs(ctx context.Context, ids []string) ([]string, error) {
	return existsByIDs(ctx, r.db, &GenreModel{}, ids)
}

// CastMemberRepository persists cast members.
type CastMemberRepository struct {
	db *gorm.DB
}

// NewCastMemberRepository creates a cast member repository.
func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

// Create inserts a new cast member row.
func (r *CastMemberRepository) Create(ctx context.Context, m *castmember.CastMember) error {
	model := &CastMemberModel{ID: m.ID, Name: m.Name, Type: string(m.Type)}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating cast member %s: %w", m.ID, err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids present in the cast members table.
func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, ids []string) ([]string, error) {
	return existsByIDs(ctx, r.db, &CastMemberModel{}, ids)
}

func existsByIDs(ctx context.Context, db *gorm.DB, model any, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []string
	err := db.WithContext(ctx).Model(model).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("checking ids existence: %w", err)
	}
	return found, nil
}

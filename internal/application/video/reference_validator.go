package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotflix/catalog/pkg/errors"
)

// Aggregate kind labels used in reference errors.
const (
	kindCategories  = "categories"
	kindGenres      = "genres"
	kindCastMembers = "cast members"
)

// ReferenceError reports the ids of one aggregate kind that could not be
// resolved. Missing ids keep the original input order.
type ReferenceError struct {
	Kind    string
	Missing []string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("some %s could not be found: %s", e.Kind, strings.Join(e.Missing, ", "))
}

type existsFunc func(ctx context.Context, ids []string) ([]string, error)

// validateReferences confirms every id of one aggregate kind exists. The
// three kinds are checked independently; callers run them sequentially and
// stop at the first failing kind. That fail-fast contract is deliberate and
// preserved for compatibility, unlike the aggregate's field validation which
// collects every violation.
func (s *Service) validateReferences(ctx context.Context, kind string, ids []string, exists existsFunc) error {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return errors.Validationf("%s ids must not be null or empty", kind)
	}

	found, err := exists(ctx, unique)
	if err != nil {
		return errors.Wrap(errors.KindInternal, fmt.Sprintf("checking %s existence", kind), err)
	}

	existing := make(map[string]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []string
	for _, id := range unique {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &ReferenceError{Kind: kind, Missing: missing}
	}
	return nil
}

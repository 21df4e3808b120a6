/*
Package mocks provides the in-memory land repository used in development and
tests. Search filtering runs through the same domain specifications the real
queries mirror, so behavior stays aligned across implementations.
*/
package mocks

import (
	"context"
	"math"
	"sort"
	"sync"

	"landlisting/domain/land"
)

// MockLandRepository is a thread-safe in-memory land repository.
type MockLandRepository struct {
	mu    sync.RWMutex
	lands map[string]*land.Land
}

// NewMockLandRepository creates an empty in-memory repository.
func NewMockLandRepository() *MockLandRepository {
	return &MockLandRepository{
		lands: make(map[string]*land.Land),
	}
}

// NextIdentity generates a new land identifier.
func (r *MockLandRepository) NextIdentity() land.ID {
	return land.NewID()
}

// Save stores the aggregate.
func (r *MockLandRepository) Save(ctx context.Context, l *land.Land) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lands[l.ID()] = l
	return nil
}

// FindByID loads one listing.
func (r *MockLandRepository) FindByID(ctx context.Context, id string) (*land.Land, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lands[id]
	if !ok {
		return nil, land.NewLandNotFoundError(id)
	}
	return l, nil
}

// Search pages through listings matching the criteria.
func (r *MockLandRepository) Search(ctx context.Context, criteria land.SearchCriteria, page, limit int, sortBy string) (*land.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	spec := land.FromCriteria(criteria)
	matched := make([]*land.Land, 0)

	r.mu.RLock()
	for _, l := range r.lands {
		if spec.IsSatisfiedBy(ctx, l) {
			matched = append(matched, l)
		}
	}
	r.mu.RUnlock()

	sortLands(matched, sortBy)

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return &land.SearchResult{
		Lands:       matched[start:end],
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func sortLands(lands []*land.Land, sortBy string) {
	switch sortBy {
	case land.SortByPrice:
		sort.SliceStable(lands, func(i, j int) bool {
			return lands[i].Price().Amount() < lands[j].Price().Amount()
		})
	case land.SortByArea:
		sort.SliceStable(lands, func(i, j int) bool {
			return lands[i].Area().Value() < lands[j].Area().Value()
		})
	case land.SortByUpdatedAt:
		sort.SliceStable(lands, func(i, j int) bool {
			return lands[i].UpdatedAt().After(lands[j].UpdatedAt())
		})
	default:
		sort.SliceStable(lands, func(i, j int) bool {
			return lands[i].CreatedAt().After(lands[j].CreatedAt())
		})
	}
}

// Delete removes the aggregate.
func (r *MockLandRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lands[id]; !ok {
		return land.NewLandNotFoundError(id)
	}
	delete(r.lands, id)
	return nil
}

// Exists reports whether the id is stored.
func (r *MockLandRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lands[id]
	return ok, nil
}

// FindByType returns listings of one type.
func (r *MockLandRepository) FindByType(ctx context.Context, t land.Type) ([]*land.Land, error) {
	return r.filter(func(l *land.Land) bool { return l.Type() == t }), nil
}

// FindByStatus returns listings in one status.
func (r *MockLandRepository) FindByStatus(ctx context.Context, s land.Status) ([]*land.Land, error) {
	return r.filter(func(l *land.Land) bool { return l.Status() == s }), nil
}

// FindByLocation returns listings in a city.
func (r *MockLandRepository) FindByLocation(ctx context.Context, city string) ([]*land.Land, error) {
	return r.filter(func(l *land.Land) bool { return l.Location().City() == city }), nil
}

// FindByPriceRange returns listings priced within [min, max].
func (r *MockLandRepository) FindByPriceRange(ctx context.Context, min, max int64) ([]*land.Land, error) {
	return r.filter(func(l *land.Land) bool {
		amount := l.Price().Amount()
		return amount >= min && amount <= max
	}), nil
}

// FindByAreaRange returns listings sized within [min, max].
func (r *MockLandRepository) FindByAreaRange(ctx context.Context, min, max int64) ([]*land.Land, error) {
	return r.filter(func(l *land.Land) bool {
		area := l.Area().Value()
		return area >= min && area <= max
	}), nil
}

// FindSimilar returns up to limit publicly visible comparable listings.
func (r *MockLandRepository) FindSimilar(ctx context.Context, l *land.Land, limit int) ([]*land.Land, error) {
	service := land.NewDomainService()
	candidates := r.filter(func(candidate *land.Land) bool {
		return candidate.ID() != l.ID() &&
			candidate.Status().IsPubliclyVisible() &&
			service.AreSimilarLands(l, candidate)
	})
	sortLands(candidates, land.SortByCreatedAt)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Count returns the total number of listings.
func (r *MockLandRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lands)), nil
}

// CountByType returns the number of listings of one type.
func (r *MockLandRepository) CountByType(ctx context.Context, t land.Type) (int64, error) {
	return int64(len(r.filter(func(l *land.Land) bool { return l.Type() == t }))), nil
}

// CountByStatus returns the number of listings in one status.
func (r *MockLandRepository) CountByStatus(ctx context.Context, s land.Status) (int64, error) {
	return int64(len(r.filter(func(l *land.Land) bool { return l.Status() == s }))), nil
}

func (r *MockLandRepository) filter(keep func(*land.Land) bool) []*land.Land {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]*land.Land, 0)
	for _, l := range r.lands {
		if keep(l) {
			matched = append(matched, l)
		}
	}
	return matched
}

// Compile-time interface implementation check
var _ land.Repository = (*MockLandRepository)(nil)

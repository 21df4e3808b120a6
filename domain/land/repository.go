package land

import "context"

// SearchCriteria narrows a listing search. Nil/empty fields are ignored.
type SearchCriteria struct {
	Type        *Type
	Status      *Status
	City        string
	MinPrice    *int64
	MaxPrice    *int64
	MinArea     *int64
	MaxArea     *int64
	Query       string // matched against title and description
	OnlyVisible bool   // restrict to publicly visible statuses
}

// SearchResult is a paginated page of listings.
type SearchResult struct {
	Lands       []*Land
	Total       int64
	TotalPages  int
	CurrentPage int
}

// Sort keys accepted by Search.
const (
	SortByCreatedAt = "created_at"
	SortByPrice     = "price"
	SortByArea      = "area"
	SortByUpdatedAt = "updated_at"
)

// Repository is the persistence port for the Land aggregate.
// Implementations own all storage concerns - transactions, locking, retries;
// the domain model assumes none of them.
type Repository interface {
	// NextIdentity generates a new land identifier.
	NextIdentity() ID

	// Save creates or updates the aggregate.
	Save(ctx context.Context, l *Land) error

	// FindByID loads an aggregate, shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*Land, error)

	// Search pages through listings matching the criteria.
	Search(ctx context.Context, criteria SearchCriteria, page, limit int, sortBy string) (*SearchResult, error)

	// Delete removes the aggregate from storage.
	Delete(ctx context.Context, id string) error

	// Exists reports whether the id is stored.
	Exists(ctx context.Context, id string) (bool, error)

	FindByType(ctx context.Context, t Type) ([]*Land, error)
	FindByStatus(ctx context.Context, s Status) ([]*Land, error)
	FindByLocation(ctx context.Context, city string) ([]*Land, error)
	FindByPriceRange(ctx context.Context, min, max int64) ([]*Land, error)
	FindByAreaRange(ctx context.Context, min, max int64) ([]*Land, error)

	// FindSimilar returns up to limit listings comparable to the given one.
	FindSimilar(ctx context.Context, l *Land, limit int) ([]*Land, error)

	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, t Type) (int64, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
}

package mysql

import (
	"context"
	"errors"
	"math"

	"landlisting/domain/land"
	"landlisting/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// LandRepository is the MySQL/GORM implementation of the land repository.
// GORM associations are never used; the listing row owns its collections as
// JSON columns, keeping the aggregate boundary intact.
type LandRepository struct {
	db *gorm.DB
}

// NewLandRepository creates the MySQL land repository.
func NewLandRepository(db *gorm.DB) *LandRepository {
	return &LandRepository{db: db}
}

// NextIdentity generates a new land identifier.
func (r *LandRepository) NextIdentity() land.ID {
	return land.NewID()
}

// Save creates or updates the listing row.
func (r *LandRepository) Save(ctx context.Context, l *land.Land) error {
	landPO, err := po.FromLandDomain(l)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(landPO).Error
}

// FindByID loads one listing.
func (r *LandRepository) FindByID(ctx context.Context, id string) (*land.Land, error) {
	var landPO po.LandPO
	result := r.db.WithContext(ctx).First(&landPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, land.NewLandNotFoundError(id)
		}
		return nil, result.Error
	}
	return landPO.ToDomain()
}

// sortColumn maps sort keys to ORDER BY clauses. Timestamps sort newest
// first, numeric keys ascending.
func sortColumn(sortBy string) string {
	switch sortBy {
	case land.SortByPrice:
		return "price ASC"
	case land.SortByArea:
		return "area ASC"
	case land.SortByUpdatedAt:
		return "updated_at DESC"
	default:
		return "created_at DESC"
	}
}

func applyCriteria(db *gorm.DB, criteria land.SearchCriteria) *gorm.DB {
	if criteria.Type != nil {
		db = db.Where("type = ?", criteria.Type.String())
	}
	if criteria.Status != nil {
		db = db.Where("status = ?", criteria.Status.String())
	}
	if criteria.OnlyVisible {
		db = db.Where("status IN ?", []string{
			string(land.StatusPublished),
			string(land.StatusReserved),
		})
	}
	if criteria.City != "" {
		db = db.Where("city = ?", criteria.City)
	}
	if criteria.MinPrice != nil {
		db = db.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		db = db.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.MinArea != nil {
		db = db.Where("area >= ?", *criteria.MinArea)
	}
	if criteria.MaxArea != nil {
		db = db.Where("area <= ?", *criteria.MaxArea)
	}
	if criteria.Query != "" {
		pattern := "%" + criteria.Query + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	return db
}

// Search pages through listings matching the criteria.
func (r *LandRepository) Search(ctx context.Context, criteria land.SearchCriteria, page, limit int, sortBy string) (*land.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := applyCriteria(r.db.WithContext(ctx).Model(&po.LandPO{}), criteria)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var landPOs []po.LandPO
	if err := query.
		Order(sortColumn(sortBy)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&landPOs).Error; err != nil {
		return nil, err
	}

	lands, err := toDomainList(landPOs)
	if err != nil {
		return nil, err
	}

	return &land.SearchResult{
		Lands:       lands,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// Delete removes the listing row.
func (r *LandRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&po.LandPO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return land.NewLandNotFoundError(id)
	}
	return nil
}

// Exists reports whether the id is stored.
func (r *LandRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&po.LandPO{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// FindByType returns listings of one type, newest first.
func (r *LandRepository) FindByType(ctx context.Context, t land.Type) ([]*land.Land, error) {
	return r.findWhere(ctx, "type = ?", t.String())
}

// FindByStatus returns listings in one status, newest first.
func (r *LandRepository) FindByStatus(ctx context.Context, s land.Status) ([]*land.Land, error) {
	return r.findWhere(ctx, "status = ?", s.String())
}

// FindByLocation returns listings in a city, newest first.
func (r *LandRepository) FindByLocation(ctx context.Context, city string) ([]*land.Land, error) {
	return r.findWhere(ctx, "city = ?", city)
}

// FindByPriceRange returns listings priced within [min, max].
func (r *LandRepository) FindByPriceRange(ctx context.Context, min, max int64) ([]*land.Land, error) {
	return r.findWhere(ctx, "price >= ? AND price <= ?", min, max)
}

// FindByAreaRange returns listings sized within [min, max].
func (r *LandRepository) FindByAreaRange(ctx context.Context, min, max int64) ([]*land.Land, error) {
	return r.findWhere(ctx, "area >= ? AND area <= ?", min, max)
}

func (r *LandRepository) findWhere(ctx context.Context, query string, args ...interface{}) ([]*land.Land, error) {
	var landPOs []po.LandPO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&landPOs).Error; err != nil {
		return nil, err
	}
	return toDomainList(landPOs)
}

// FindSimilar returns up to limit publicly visible listings comparable to the
// given one. SQL pre-filters by type and area band; the domain similarity
// rule makes the final cut.
func (r *LandRepository) FindSimilar(ctx context.Context, l *land.Land, limit int) ([]*land.Land, error) {
	area := l.Area().Value()
	var landPOs []po.LandPO
	if err := r.db.WithContext(ctx).
		Where("id <> ?", l.ID()).
		Where("type = ?", l.Type().String()).
		Where("status IN ?", []string{string(land.StatusPublished), string(land.StatusReserved)}).
		Where("area >= ? AND area <= ?", area/2, area*2).
		Order("created_at DESC").
		Limit(limit * 4).
		Find(&landPOs).Error; err != nil {
		return nil, err
	}

	service := land.NewDomainService()
	similar := make([]*land.Land, 0, limit)
	for i := range landPOs {
		candidate, err := landPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		if service.AreSimilarLands(l, candidate) {
			similar = append(similar, candidate)
			if len(similar) == limit {
				break
			}
		}
	}
	return similar, nil
}

// Count returns the total number of listings.
func (r *LandRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&po.LandPO{}).Count(&count).Error
	return count, err
}

// CountByType returns the number of listings of one type.
func (r *LandRepository) CountByType(ctx context.Context, t land.Type) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&po.LandPO{}).
		Where("type = ?", t.String()).
		Count(&count).Error
	return count, err
}

// CountByStatus returns the number of listings in one status.
func (r *LandRepository) CountByStatus(ctx context.Context, s land.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&po.LandPO{}).
		Where("status = ?", s.String()).
		Count(&count).Error
	return count, err
}

func toDomainList(landPOs []po.LandPO) ([]*land.Land, error) {
	lands := make([]*land.Land, len(landPOs))
	for i := range landPOs {
		l, err := landPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		lands[i] = l
	}
	return lands, nil
}

// Compile-time interface implementation check
var _ land.Repository = (*LandRepository)(nil)

/*
Package land (application layer) orchestrates the land listing use cases:
it loads aggregates through the repository port, invokes aggregate methods and
the domain service, and maps results to transport DTOs. No business rules live
here; the layer only sequences domain calls and persistence.
*/
package land

import (
	"context"
	"errors"

	domain "landlisting/domain/land"
	"landlisting/domain/shared"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	similarLimit    = 6
)

// ApplicationService coordinates land listing use cases.
type ApplicationService struct {
	repo          domain.Repository
	domainService *domain.DomainService
}

// NewApplicationService creates the land application service.
func NewApplicationService(repo domain.Repository) *ApplicationService {
	return &ApplicationService{
		repo:          repo,
		domainService: domain.NewDomainService(),
	}
}

// CreateLand creates a new draft listing.
func (s *ApplicationService) CreateLand(ctx context.Context, req CreateLandRequest) (*LandResponse, error) {
	l, err := domain.NewLand(domain.CreateLandData{
		Name:        req.Name,
		Description: req.Description,
		Area:        req.Area,
		Price:       req.Price,
		Currency:    req.Currency,
		Location:    req.Location,
		City:        req.City,
		Province:    req.Province,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Type:        req.Type,
		Features:    req.Features,
		Images:      toImageInputs(req.Images),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}

	return toResponse(l), nil
}

// GetLand returns a single listing.
func (s *ApplicationService) GetLand(ctx context.Context, id string) (*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// SearchLands pages through listings matching the query.
func (s *ApplicationService) SearchLands(ctx context.Context, q SearchLandsQuery) (*SearchLandsResponse, error) {
	criteria := domain.SearchCriteria{
		City:        q.City,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinArea:     q.MinArea,
		MaxArea:     q.MaxArea,
		Query:       q.Query,
		OnlyVisible: q.OnlyVisible,
	}

	if q.Type != "" {
		t, err := domain.NewType(q.Type)
		if err != nil {
			return nil, err
		}
		criteria.Type = &t
	}
	if q.Status != "" {
		st, err := domain.NewStatus(q.Status)
		if err != nil {
			return nil, err
		}
		criteria.Status = &st
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sortBy := q.SortBy
	switch sortBy {
	case domain.SortByCreatedAt, domain.SortByPrice, domain.SortByArea, domain.SortByUpdatedAt:
	case "":
		sortBy = domain.SortByCreatedAt
	default:
		return nil, shared.NewValidationError("SearchLandsQuery", "sort_by", "unsupported sort key: "+sortBy)
	}

	result, err := s.repo.Search(ctx, criteria, page, pageSize, sortBy)
	if err != nil {
		return nil, err
	}

	return &SearchLandsResponse{
		Lands:       toResponseList(result.Lands),
		Total:       result.Total,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	}, nil
}

// UpdateLandPrice changes the asking price. Price floors are enforced by the
// domain service after the aggregate accepts the change.
func (s *ApplicationService) UpdateLandPrice(ctx context.Context, id string, req UpdateLandPriceRequest) (*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := domain.NewPrice(req.Price, req.Currency)
	if err != nil {
		return nil, err
	}
	if err := l.UpdatePrice(price); err != nil {
		return nil, err
	}
	if _, err := s.domainService.ValidatePricing(l); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// UpdateLandDetails applies the non-nil fields of the request.
func (s *ApplicationService) UpdateLandDetails(ctx context.Context, id string, req UpdateLandDetailsRequest) (*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title, err := domain.NewTitle(*req.Name)
		if err != nil {
			return nil, err
		}
		l.UpdateTitle(title)
	}
	if req.Description != nil {
		description, err := domain.NewDescription(*req.Description)
		if err != nil {
			return nil, err
		}
		l.UpdateDescription(description)
	}
	if req.Area != nil {
		area, err := domain.NewArea(*req.Area)
		if err != nil {
			return nil, err
		}
		if err := l.UpdateArea(area); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		t, err := domain.NewType(*req.Type)
		if err != nil {
			return nil, err
		}
		if err := l.UpdateType(t); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		var coords *domain.Coordinates
		if req.Location.Latitude != nil && req.Location.Longitude != nil {
			c, err := domain.NewCoordinates(*req.Location.Latitude, *req.Location.Longitude)
			if err != nil {
				return nil, err
			}
			coords = &c
		}
		location, err := domain.NewLocation(
			req.Location.Address,
			req.Location.City,
			req.Location.Province,
			req.Location.Country,
			coords,
		)
		if err != nil {
			return nil, err
		}
		l.UpdateLocation(location)
	}
	for _, feature := range req.Features {
		if err := l.AddFeature(feature); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// PublishLand runs the full publication validation, then publishes.
func (s *ApplicationService) PublishLand(ctx context.Context, id string) (*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.domainService.ValidateForPublication(l); err != nil {
		return nil, err
	}
	if err := l.Publish(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// UnpublishLand takes a listing off the public site.
func (s *ApplicationService) UnpublishLand(ctx context.Context, id string) (*LandResponse, error) {
	return s.transition(ctx, id, func(l *domain.Land) error {
		l.Unpublish()
		return nil
	})
}

// ArchiveLand archives a listing.
func (s *ApplicationService) ArchiveLand(ctx context.Context, id string) (*LandResponse, error) {
	return s.transition(ctx, id, func(l *domain.Land) error {
		l.Archive()
		return nil
	})
}

// MarkLandSold records the sale of a listing.
func (s *ApplicationService) MarkLandSold(ctx context.Context, id string) (*LandResponse, error) {
	return s.transition(ctx, id, (*domain.Land).MarkAsSold)
}

// ReserveLand places a deposit hold on a listing.
func (s *ApplicationService) ReserveLand(ctx context.Context, id string) (*LandResponse, error) {
	return s.transition(ctx, id, (*domain.Land).Reserve)
}

// RestoreLand brings an archived listing back to draft.
func (s *ApplicationService) RestoreLand(ctx context.Context, id string) (*LandResponse, error) {
	return s.transition(ctx, id, (*domain.Land).Restore)
}

func (s *ApplicationService) transition(ctx context.Context, id string, op func(*domain.Land) error) (*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(l); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// DeleteLand removes a listing. Only draft and archived listings may go.
func (s *ApplicationService) DeleteLand(ctx context.Context, id string) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !l.Status().IsDeletable() {
		return domain.NewNotDeletableError(l.Status())
	}
	return s.repo.Delete(ctx, id)
}

// ValidateLandForPublication reports whether a listing may go live without
// mutating it. Blocking rules surface as a violation instead of an error so
// the endpoint can answer 200 either way.
func (s *ApplicationService) ValidateLandForPublication(ctx context.Context, id string) (*PublicationCheckResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validation, err := s.domainService.ValidateForPublication(l)
	if err != nil {
		var ruleErr *shared.BusinessRuleError
		if errors.As(err, &ruleErr) {
			return &PublicationCheckResponse{
				CanPublish: false,
				Violation:  ruleErr.Code,
				Reason:     ruleErr.Message,
				Notes:      []string{},
			}, nil
		}
		return nil, err
	}

	return &PublicationCheckResponse{
		CanPublish: true,
		Notes:      validation.Notes,
	}, nil
}

// AssessLandValue returns the market value assessment for a listing.
func (s *ApplicationService) AssessLandValue(ctx context.Context, id string) (*ValuationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assessment, err := s.domainService.AssessMarketValue(l)
	if err != nil {
		return nil, err
	}

	return &ValuationResponse{
		PricePerSquareMeter: assessment.PricePerSquareMeter,
		RangeMin:            assessment.Range.Min,
		RangeMax:            assessment.Range.Max,
		Classification:      string(assessment.Classification),
		Confidence:          string(assessment.Confidence),
		Notes:               assessment.Notes,
	}, nil
}

// GetSEOSuggestions generates listing copy for a land.
func (s *ApplicationService) GetSEOSuggestions(ctx context.Context, id string) (*SEOResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seo := s.domainService.GenerateSEOSuggestions(l)
	return &SEOResponse{
		Title:           seo.Title,
		MetaDescription: seo.MetaDescription,
		Slug:            seo.Slug,
		Keywords:        seo.Keywords,
	}, nil
}

// FindSimilarLands returns comparable listings.
func (s *ApplicationService) FindSimilarLands(ctx context.Context, id string) ([]*LandResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	similar, err := s.repo.FindSimilar(ctx, l, similarLimit)
	if err != nil {
		return nil, err
	}
	return toResponseList(similar), nil
}

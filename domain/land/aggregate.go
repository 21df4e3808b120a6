/*
Package land holds the Land aggregate: a listing for a land parcel composed of
self-validating value objects, a guarded status lifecycle and the domain
service computing derived business rules.

The aggregate is the single consistency boundary: every mutation flows through
an entity method that enforces the cross-field rules before replacing the
relevant value object and touching updatedAt. The core is synchronous and free
of I/O; persistence belongs to the Repository port.
*/
package land

import (
	"time"

	"landlisting/domain/shared"
)

// Land is the aggregate root. It owns exactly one instance of each value
// object plus creation/update timestamps. All fields are private; behavior is
// exposed through methods.
type Land struct {
	id          ID
	title       Title
	description Description
	area        Area
	price       Price
	landType    Type
	status      Status
	location    Location
	features    Features
	images      Images
	createdAt   time.Time
	updatedAt   time.Time
}

// CreateLandData is the factory input for a brand-new listing.
// Location is the free-form address; the structured fields and coordinates
// are optional refinements.
type CreateLandData struct {
	Name        string
	Description string
	Area        float64
	Price       float64
	Currency    string
	Location    string
	City        string
	Province    string
	Country     string
	Latitude    *float64
	Longitude   *float64
	Type        string
	Features    []string
	Images      []ImageInput
}

// ============================================================================
// Factory methods
// ============================================================================

// NewLand creates a new Land aggregate in draft status.
// This is the only entry point for creating listings; every value object
// validates its own invariants, so no invalid Land can exist.
func NewLand(data CreateLandData) (*Land, error) {
	title, err := NewTitle(data.Name)
	if err != nil {
		return nil, err
	}
	description, err := NewDescription(data.Description)
	if err != nil {
		return nil, err
	}
	area, err := NewArea(data.Area)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(data.Price, data.Currency)
	if err != nil {
		return nil, err
	}
	landType, err := NewType(data.Type)
	if err != nil {
		return nil, err
	}

	var coords *Coordinates
	if data.Latitude != nil && data.Longitude != nil {
		c, err := NewCoordinates(*data.Latitude, *data.Longitude)
		if err != nil {
			return nil, err
		}
		coords = &c
	}
	location, err := NewLocation(data.Location, data.City, data.Province, data.Country, coords)
	if err != nil {
		return nil, err
	}

	features, err := NewFeatures(data.Features)
	if err != nil {
		return nil, err
	}
	images, err := NewImages(data.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Land{
		id:          NewID(),
		title:       title,
		description: description,
		area:        area,
		price:       price,
		landType:    landType,
		status:      StatusDraft,
		location:    location,
		features:    features,
		images:      images,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructionDTO rebuilds a Land from storage. It carries fully
// constructed value objects plus timestamps.
// ⚠️ Repository-layer use only; never call from the application layer.
type ReconstructionDTO struct {
	ID          ID
	Title       Title
	Description Description
	Area        Area
	Price       Price
	Type        Type
	Status      Status
	Location    Location
	Features    Features
	Images      Images
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildFromDTO reconstitutes a Land aggregate from stored fields.
// No validation side effects beyond the value objects the caller constructed.
// ⚠️ Repository-layer use only.
func RebuildFromDTO(dto ReconstructionDTO) *Land {
	return &Land{
		id:          dto.ID,
		title:       dto.Title,
		description: dto.Description,
		area:        dto.Area,
		price:       dto.Price,
		landType:    dto.Type,
		status:      dto.Status,
		location:    dto.Location,
		features:    dto.Features,
		images:      dto.Images,
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
	}
}

// touch records a successful mutation.
func (l *Land) touch() {
	l.updatedAt = time.Now()
}

// ============================================================================
// Status lifecycle
// ============================================================================

// Publish moves the listing to published.
// Guard: the listing must be complete, and the status graph must allow the
// transition (draft or reserved).
func (l *Land) Publish() error {
	if !l.IsComplete() {
		return NewIncompletePublishError()
	}
	if !l.status.CanTransitionTo(StatusPublished) {
		return NewInvalidTransitionError(l.status, StatusPublished)
	}
	l.status = StatusPublished
	l.touch()
	return nil
}

// Unpublish moves the listing back to draft unconditionally.
// Note: this bypasses the status transition graph (e.g. sold → draft is
// reachable here but not in the graph). Kept as observed behavior.
func (l *Land) Unpublish() {
	l.status = StatusDraft
	l.touch()
}

// Archive moves the listing to archived unconditionally.
// Same graph bypass as Unpublish; kept as observed behavior.
func (l *Land) Archive() {
	l.status = StatusArchived
	l.touch()
}

// MarkAsSold transitions to sold through the status graph.
func (l *Land) MarkAsSold() error {
	if !l.status.CanTransitionTo(StatusSold) {
		return NewInvalidTransitionError(l.status, StatusSold)
	}
	l.status = StatusSold
	l.touch()
	return nil
}

// Reserve transitions to reserved through the status graph.
func (l *Land) Reserve() error {
	if !l.status.CanTransitionTo(StatusReserved) {
		return NewInvalidTransitionError(l.status, StatusReserved)
	}
	l.status = StatusReserved
	l.touch()
	return nil
}

// Restore revives an archived listing back to draft through the status graph.
func (l *Land) Restore() error {
	if !l.status.CanTransitionTo(StatusDraft) {
		return NewInvalidTransitionError(l.status, StatusDraft)
	}
	l.status = StatusDraft
	l.touch()
	return nil
}

// ============================================================================
// Guarded field updates
// ============================================================================

// UpdatePrice replaces the price. On a published listing a change of more
// than 15% is rejected; smaller corrections pass.
func (l *Land) UpdatePrice(price Price) error {
	if l.status == StatusPublished && l.price.IsSignificantlyDifferentFrom(price) {
		return NewPublishedPriceChangeError(l.price, price)
	}
	l.price = price
	l.touch()
	return nil
}

// UpdateArea replaces the area. Rejected on a published listing when the
// value actually differs.
func (l *Land) UpdateArea(area Area) error {
	if l.status == StatusPublished && !l.area.Equals(area) {
		return NewPublishedAreaChangeError()
	}
	l.area = area
	l.touch()
	return nil
}

// UpdateType replaces the land type. Rejected on a published listing when the
// value actually differs.
func (l *Land) UpdateType(landType Type) error {
	if l.status == StatusPublished && l.landType != landType {
		return NewPublishedTypeChangeError()
	}
	l.landType = landType
	l.touch()
	return nil
}

// UpdateTitle replaces the title.
func (l *Land) UpdateTitle(title Title) {
	l.title = title
	l.touch()
}

// UpdateDescription replaces the description.
func (l *Land) UpdateDescription(description Description) {
	l.description = description
	l.touch()
}

// UpdateLocation replaces the location.
func (l *Land) UpdateLocation(location Location) {
	l.location = location
	l.touch()
}

// ============================================================================
// Collection updates - copy-on-write through the value objects
// ============================================================================

// AddFeature adds a feature; adding an existing one is a harmless no-op.
func (l *Land) AddFeature(feature string) error {
	next, err := l.features.Add(feature)
	if err != nil {
		return err
	}
	l.features = next
	l.touch()
	return nil
}

// RemoveFeature removes a feature case-insensitively.
func (l *Land) RemoveFeature(feature string) {
	l.features = l.features.Remove(feature)
	l.touch()
}

// AddImage appends an image; an exact duplicate URL is a harmless no-op.
func (l *Land) AddImage(input ImageInput) error {
	next, err := l.images.Add(input)
	if err != nil {
		return err
	}
	l.images = next
	l.touch()
	return nil
}

// RemoveImage removes an image by URL, re-sequencing the gallery.
func (l *Land) RemoveImage(url string) {
	l.images = l.images.Remove(url)
	l.touch()
}

// ReorderImages rearranges the gallery to follow the given URL sequence.
func (l *Land) ReorderImages(urls []string) error {
	next, err := l.images.Reorder(urls)
	if err != nil {
		return err
	}
	l.images = next
	l.touch()
	return nil
}

// UpdateImageAlt replaces the alt text of the image with the given URL.
func (l *Land) UpdateImageAlt(url, alt string) {
	l.images = l.images.UpdateAlt(url, alt)
	l.touch()
}

// ============================================================================
// Query methods - pure, no side effects
// ============================================================================

// IsComplete reports whether every required value object is present.
// A freshly created Land is always complete; a reconstituted one may not be
// when the stored row was partial.
func (l *Land) IsComplete() bool {
	return !l.id.IsZero() &&
		l.title.Value() != "" &&
		l.description.Value() != "" &&
		!l.area.IsZero() &&
		!l.price.IsZero() &&
		l.landType.IsValid() &&
		l.status.IsValid() &&
		!l.location.IsZero()
}

// IsNew reports whether the aggregate was never mutated since creation,
// using timestamp equality as a persistence-state proxy.
func (l *Land) IsNew() bool {
	return l.createdAt.Equal(l.updatedAt)
}

// PricePerSquareMeter computes the unit price.
func (l *Land) PricePerSquareMeter() float64 {
	return l.price.PerSquareMeter(l.area)
}

// AreaInHectares converts the area to hectares.
func (l *Land) AreaInHectares() float64 { return l.area.Hectares() }

// AreaInTareas converts the area to tareas.
func (l *Land) AreaInTareas() float64 { return l.area.Tareas() }

// ============================================================================
// Getters - read-only accessors
// ============================================================================

// ID returns the aggregate identifier as a string.
func (l *Land) ID() string { return l.id.Value() }

// Identity returns the identifier value object.
func (l *Land) Identity() ID { return l.id }

// Title returns the title value object.
func (l *Land) Title() Title { return l.title }

// Description returns the description value object.
func (l *Land) Description() Description { return l.description }

// Area returns the area value object.
func (l *Land) Area() Area { return l.area }

// Price returns the price value object.
func (l *Land) Price() Price { return l.price }

// Type returns the land type.
func (l *Land) Type() Type { return l.landType }

// Status returns the lifecycle status.
func (l *Land) Status() Status { return l.status }

// Location returns the location value object.
func (l *Land) Location() Location { return l.location }

// Features returns the feature collection.
func (l *Land) Features() Features { return l.features }

// Images returns the image collection.
func (l *Land) Images() Images { return l.images }

// CreatedAt returns the creation timestamp.
func (l *Land) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (l *Land) UpdatedAt() time.Time { return l.updatedAt }

// Compile-time check that Land implements AggregateRoot.
var _ shared.AggregateRoot = (*Land)(nil)

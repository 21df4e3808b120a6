package land

import "time"

// CreateLandRequest is the input for creating a listing.
type CreateLandRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Area        float64        `json:"area" binding:"required"`
	Price       float64        `json:"price" binding:"required"`
	Currency    string         `json:"currency"`
	Location    string         `json:"location" binding:"required"`
	City        string         `json:"city"`
	Province    string         `json:"province"`
	Country     string         `json:"country"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	Type        string         `json:"type" binding:"required"`
	Features    []string       `json:"features"`
	Images      []ImageRequest `json:"images"`
}

// ImageRequest is a single image descriptor in requests.
type ImageRequest struct {
	URL     string `json:"url" binding:"required"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// UpdateLandPriceRequest changes the asking price.
type UpdateLandPriceRequest struct {
	Price    float64 `json:"price" binding:"required"`
	Currency string  `json:"currency"`
}

// UpdateLocationRequest replaces the location block. Address is required
// because a location without one is invalid.
type UpdateLocationRequest struct {
	Address   string   `json:"address" binding:"required"`
	City      string   `json:"city"`
	Province  string   `json:"province"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UpdateLandDetailsRequest carries partial updates; nil fields are untouched.
type UpdateLandDetailsRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Area        *float64               `json:"area"`
	Type        *string                `json:"type"`
	Location    *UpdateLocationRequest `json:"location"`
	Features    []string               `json:"features"`
}

// SearchLandsQuery is bound from query parameters on the list endpoint.
type SearchLandsQuery struct {
	Type        string `form:"type"`
	Status      string `form:"status"`
	City        string `form:"city"`
	MinPrice    *int64 `form:"min_price"`
	MaxPrice    *int64 `form:"max_price"`
	MinArea     *int64 `form:"min_area"`
	MaxArea     *int64 `form:"max_area"`
	Query       string `form:"q"`
	OnlyVisible bool   `form:"only_visible"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	SortBy      string `form:"sort_by"`
}

// LandResponse is the listing representation returned by the API.
type LandResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Area        AreaResponse     `json:"area"`
	Price       PriceResponse    `json:"price"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	Location    LocationResponse `json:"location"`
	Features    []string         `json:"features"`
	Images      []ImageResponse  `json:"images"`
	IsComplete  bool             `json:"is_complete"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// AreaResponse exposes the area in every unit buyers use locally.
type AreaResponse struct {
	SquareMeters int64   `json:"square_meters"`
	Hectares     float64 `json:"hectares"`
	Tareas       float64 `json:"tareas"`
	Acres        float64 `json:"acres"`
	Formatted    string  `json:"formatted"`
}

// PriceResponse exposes the asking price.
type PriceResponse struct {
	Amount         int64   `json:"amount"`
	Currency       string  `json:"currency"`
	Formatted      string  `json:"formatted"`
	PerSquareMeter float64 `json:"per_square_meter"`
}

// LocationResponse exposes the location block.
type LocationResponse struct {
	Address   string   `json:"address"`
	City      string   `json:"city,omitempty"`
	Province  string   `json:"province,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Geohash   string   `json:"geohash,omitempty"`
	ShortForm string   `json:"short_form"`
}

// ImageResponse is a single image descriptor in responses.
type ImageResponse struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// SearchLandsResponse is one page of listings.
type SearchLandsResponse struct {
	Lands       []*LandResponse `json:"lands"`
	Total       int64           `json:"total"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
}

// PublicationCheckResponse reports whether a listing may go live.
// Violation carries the blocking rule code when CanPublish is false.
type PublicationCheckResponse struct {
	CanPublish bool     `json:"can_publish"`
	Violation  string   `json:"violation,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Notes      []string `json:"notes"`
}

// ValuationResponse is the market value assessment for a listing.
type ValuationResponse struct {
	PricePerSquareMeter float64  `json:"price_per_square_meter"`
	RangeMin            float64  `json:"range_min"`
	RangeMax            float64  `json:"range_max"`
	Classification      string   `json:"classification"`
	Confidence          string   `json:"confidence"`
	Notes               []string `json:"notes"`
}

// SEOResponse is generated listing copy.
type SEOResponse struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	Slug            string   `json:"slug"`
	Keywords        []string `json:"keywords"`
}

package land

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mmcloughlin/geohash"

	"landlisting/domain/shared"
)

const (
	addressMinLength = 5
	addressMaxLength = 200

	earthRadiusKm = 6371.0

	geohashPrecision = 9
)

// Dominican Republic bounding box, used for a soft advisory check only.
// Coordinates outside it are flagged, never rejected.
const (
	drMinLatitude  = 17.36
	drMaxLatitude  = 19.98
	drMinLongitude = -72.01
	drMaxLongitude = -68.28
)

// Coordinates is a validated lat/lng pair.
type Coordinates struct {
	latitude  float64
	longitude float64
}

// NewCoordinates validates standard coordinate ranges.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return Coordinates{}, shared.NewValidationError("LandLocation", "latitude", "must be between -90 and 90")
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return Coordinates{}, shared.NewValidationError("LandLocation", "longitude", "must be between -180 and 180")
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 { return c.latitude }

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 { return c.longitude }

// InDominicanRepublic reports whether the point falls inside the DR
// bounding box. Advisory only.
func (c Coordinates) InDominicanRepublic() bool {
	return c.latitude >= drMinLatitude && c.latitude <= drMaxLatitude &&
		c.longitude >= drMinLongitude && c.longitude <= drMaxLongitude
}

// Location is where the parcel sits: a free-form address plus optional
// structured city/province/country and optional coordinates.
type Location struct {
	address  string
	city     string
	province string
	country  string
	coords   *Coordinates

	warnings []string
}

// NewLocation validates and constructs a Location. City, province, country
// and coords are optional. Coordinates outside the Dominican Republic produce
// a non-fatal warning, not an error.
func NewLocation(address, city, province, country string, coords *Coordinates) (Location, error) {
	addr := strings.TrimSpace(address)
	length := utf8.RuneCountInString(addr)
	if length < addressMinLength {
		return Location{}, shared.NewValidationError("LandLocation", "address", "must be at least 5 characters")
	}
	if length > addressMaxLength {
		return Location{}, shared.NewValidationError("LandLocation", "address", "must be at most 200 characters")
	}

	loc := Location{
		address:  addr,
		city:     strings.TrimSpace(city),
		province: strings.TrimSpace(province),
		country:  strings.TrimSpace(country),
	}
	if coords != nil {
		c := *coords
		loc.coords = &c
		if !c.InDominicanRepublic() {
			loc.warnings = append(loc.warnings, "coordinates fall outside the Dominican Republic")
		}
	}
	return loc, nil
}

// Address returns the free-form address.
func (l Location) Address() string { return l.address }

// City returns the structured city, empty when unknown.
func (l Location) City() string { return l.city }

// Province returns the structured province, empty when unknown.
func (l Location) Province() string { return l.province }

// Country returns the structured country, empty when unknown.
func (l Location) Country() string { return l.country }

// Coordinates returns a copy of the coordinates, nil when absent.
func (l Location) Coordinates() *Coordinates {
	if l.coords == nil {
		return nil
	}
	c := *l.coords
	return &c
}

// HasCoordinates reports whether a lat/lng pair is present.
func (l Location) HasCoordinates() bool { return l.coords != nil }

// Warnings returns advisory notes collected at construction.
func (l Location) Warnings() []string {
	out := make([]string, len(l.warnings))
	copy(out, l.warnings)
	return out
}

// Equals compares address and structured fields.
func (l Location) Equals(other Location) bool {
	if l.address != other.address || l.city != other.city ||
		l.province != other.province || l.country != other.country {
		return false
	}
	if (l.coords == nil) != (other.coords == nil) {
		return false
	}
	if l.coords != nil && *l.coords != *other.coords {
		return false
	}
	return true
}

// IsZero reports whether the location was never constructed.
func (l Location) IsZero() bool { return l.address == "" }

// DistanceTo computes the Haversine distance in kilometers.
// Returns nil, not an error, when either side lacks coordinates.
func (l Location) DistanceTo(other Location) *float64 {
	if l.coords == nil || other.coords == nil {
		return nil
	}

	lat1 := l.coords.latitude * math.Pi / 180
	lat2 := other.coords.latitude * math.Pi / 180
	dLat := (other.coords.latitude - l.coords.latitude) * math.Pi / 180
	dLng := (other.coords.longitude - l.coords.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	distance := earthRadiusKm * c
	return &distance
}

// Geohash encodes the coordinates for proximity indexing.
// Empty when coordinates are absent.
func (l Location) Geohash() string {
	if l.coords == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(l.coords.latitude, l.coords.longitude, geohashPrecision)
}

// ShortForm returns "city, province" when structured data exists, otherwise
// the raw address. Used in generated SEO text.
func (l Location) ShortForm() string {
	switch {
	case l.city != "" && l.province != "":
		return l.city + ", " + l.province
	case l.city != "":
		return l.city
	case l.province != "":
		return l.province
	default:
		return l.address
	}
}

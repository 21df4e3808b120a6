/*
Package po holds persistence objects: plain structs mapping the Land aggregate
to MySQL rows. No business logic, no GORM associations; collections are stored
as JSON columns on the listing row because they never outgrow 20 entries.
*/
package po

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"landlisting/domain/land"
)

// LandPO is the land listing persistence object.
type LandPO struct {
	ID          string   `gorm:"primaryKey;size:64"`
	Name        string   `gorm:"size:100;not null"`
	Description string   `gorm:"type:text;not null"`
	Area        int64    `gorm:"not null;index"`
	Price       int64    `gorm:"not null;index"`
	Currency    string   `gorm:"size:3;not null"`
	Type        string   `gorm:"size:20;not null;index"`
	Status      string   `gorm:"size:20;not null;index"`
	Address     string   `gorm:"size:200;not null"`
	City        string   `gorm:"size:100;index"`
	Province    string   `gorm:"size:100"`
	Country     string   `gorm:"size:100"`
	Latitude    *float64 `gorm:"type:decimal(9,6)"`
	Longitude   *float64 `gorm:"type:decimal(9,6)"`
	// Geohash is a search index projection, recomputed on every save.
	Geohash   string    `gorm:"size:12;index"`
	Features  string    `gorm:"type:json"`
	Images    string    `gorm:"type:json"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the table name.
func (LandPO) TableName() string {
	return "lands"
}

type imageRecord struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// FromLandDomain converts the aggregate to a persistence object.
func FromLandDomain(l *land.Land) (*LandPO, error) {
	featuresJSON, err := json.Marshal(l.Features().Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	records := make([]imageRecord, 0, l.Images().Count())
	for _, img := range l.Images().Items() {
		records = append(records, imageRecord{
			URL:          img.URL(),
			Alt:          img.Alt(),
			Caption:      img.Caption(),
			DisplayOrder: img.DisplayOrder(),
		})
	}
	imagesJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal images: %w", err)
	}

	loc := l.Location()
	po := &LandPO{
		ID:          l.ID(),
		Name:        l.Title().Value(),
		Description: l.Description().Value(),
		Area:        l.Area().Value(),
		Price:       l.Price().Amount(),
		Currency:    l.Price().Currency(),
		Type:        l.Type().String(),
		Status:      l.Status().String(),
		Address:     loc.Address(),
		City:        loc.City(),
		Province:    loc.Province(),
		Country:     loc.Country(),
		Geohash:     loc.Geohash(),
		Features:    string(featuresJSON),
		Images:      string(imagesJSON),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
	if coords := loc.Coordinates(); coords != nil {
		lat := coords.Latitude()
		lng := coords.Longitude()
		po.Latitude = &lat
		po.Longitude = &lng
	}

	return po, nil
}

// ToDomain reconstitutes the aggregate from the row. Every value object is
// rebuilt through its factory so a corrupted row surfaces as an error instead
// of an invalid aggregate.
func (po *LandPO) ToDomain() (*land.Land, error) {
	id, err := land.ParseID(po.ID)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	title, err := land.NewTitle(po.Name)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	description, err := land.NewDescription(po.Description)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	area, err := land.NewArea(float64(po.Area))
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	price, err := land.NewPrice(float64(po.Price), po.Currency)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	landType, err := land.NewType(po.Type)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}
	status, err := land.NewStatus(po.Status)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}

	var coords *land.Coordinates
	if po.Latitude != nil && po.Longitude != nil {
		c, err := land.NewCoordinates(*po.Latitude, *po.Longitude)
		if err != nil {
			return nil, fmt.Errorf("land %s: %w", po.ID, err)
		}
		coords = &c
	}
	location, err := land.NewLocation(po.Address, po.City, po.Province, po.Country, coords)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}

	var featureItems []string
	if po.Features != "" {
		if err := json.Unmarshal([]byte(po.Features), &featureItems); err != nil {
			return nil, fmt.Errorf("land %s: failed to unmarshal features: %w", po.ID, err)
		}
	}
	features, err := land.NewFeatures(featureItems)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}

	var records []imageRecord
	if po.Images != "" {
		if err := json.Unmarshal([]byte(po.Images), &records); err != nil {
			return nil, fmt.Errorf("land %s: failed to unmarshal images: %w", po.ID, err)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DisplayOrder < records[j].DisplayOrder
	})
	inputs := make([]land.ImageInput, len(records))
	for i, rec := range records {
		inputs[i] = land.ImageInput{URL: rec.URL, Alt: rec.Alt, Caption: rec.Caption}
	}
	images, err := land.NewImages(inputs)
	if err != nil {
		return nil, fmt.Errorf("land %s: %w", po.ID, err)
	}

	return land.RebuildFromDTO(land.ReconstructionDTO{
		ID:          id,
		Title:       title,
		Description: description,
		Area:        area,
		Price:       price,
		Type:        landType,
		Status:      status,
		Location:    location,
		Features:    features,
		Images:      images,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}), nil
}

// SearchIndexEntry is the denormalized projection exported to the search
// index. It carries only the fields search cares about.
type SearchIndexEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	City     string   `json:"city,omitempty"`
	Province string   `json:"province,omitempty"`
	Geohash  string   `json:"geohash,omitempty"`
	Area     int64    `json:"area"`
	Price    int64    `json:"price"`
	Currency string   `json:"currency"`
	Features []string `json:"features,omitempty"`
}

// ToSearchIndex builds the search projection from the row.
func (po *LandPO) ToSearchIndex() (*SearchIndexEntry, error) {
	var featureItems []string
	if po.Features != "" {
		if err := json.Unmarshal([]byte(po.Features), &featureItems); err != nil {
			return nil, fmt.Errorf("land %s: failed to unmarshal features: %w", po.ID, err)
		}
	}

	return &SearchIndexEntry{
		ID:       po.ID,
		Name:     po.Name,
		Type:     po.Type,
		Status:   po.Status,
		City:     po.City,
		Province: po.Province,
		Geohash:  po.Geohash,
		Area:     po.Area,
		Price:    po.Price,
		Currency: po.Currency,
		Features: featureItems,
	}, nil
}

// SearchImage is a single image reference inside the search data record.
type SearchImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// SearchDataEntry is the full read-optimized record exported alongside the
// index entry: everything a search result card renders without touching the
// lands table.
type SearchDataEntry struct {
	SearchIndexEntry
	Description string        `json:"description"`
	Address     string        `json:"address"`
	Country     string        `json:"country,omitempty"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Images      []SearchImage `json:"images,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ToSearchData builds the full search record from the row, images in display
// order.
func (po *LandPO) ToSearchData() (*SearchDataEntry, error) {
	index, err := po.ToSearchIndex()
	if err != nil {
		return nil, err
	}

	var records []imageRecord
	if po.Images != "" {
		if err := json.Unmarshal([]byte(po.Images), &records); err != nil {
			return nil, fmt.Errorf("land %s: failed to unmarshal images: %w", po.ID, err)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DisplayOrder < records[j].DisplayOrder
	})
	images := make([]SearchImage, len(records))
	for i, rec := range records {
		images[i] = SearchImage{URL: rec.URL, Alt: rec.Alt}
	}

	return &SearchDataEntry{
		SearchIndexEntry: *index,
		Description:      po.Description,
		Address:          po.Address,
		Country:          po.Country,
		Latitude:         po.Latitude,
		Longitude:        po.Longitude,
		Images:           images,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
	}, nil
}

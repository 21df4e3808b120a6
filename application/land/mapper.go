package land

import (
	domain "landlisting/domain/land"
)

// toResponse projects the aggregate into the API representation.
func toResponse(l *domain.Land) *LandResponse {
	images := make([]ImageResponse, 0, l.Images().Count())
	for _, img := range l.Images().Items() {
		images = append(images, ImageResponse{
			URL:          img.URL(),
			Alt:          img.Alt(),
			Caption:      img.Caption(),
			DisplayOrder: img.DisplayOrder(),
		})
	}

	loc := l.Location()
	locResp := LocationResponse{
		Address:   loc.Address(),
		City:      loc.City(),
		Province:  loc.Province(),
		Country:   loc.Country(),
		Geohash:   loc.Geohash(),
		ShortForm: loc.ShortForm(),
	}
	if coords := loc.Coordinates(); coords != nil {
		lat := coords.Latitude()
		lng := coords.Longitude()
		locResp.Latitude = &lat
		locResp.Longitude = &lng
	}

	return &LandResponse{
		ID:          l.ID(),
		Name:        l.Title().Value(),
		Slug:        l.Title().Slug(),
		Description: l.Description().Value(),
		Area: AreaResponse{
			SquareMeters: l.Area().Value(),
			Hectares:     l.Area().Hectares(),
			Tareas:       l.Area().Tareas(),
			Acres:        l.Area().Acres(),
			Formatted:    l.Area().Format(),
		},
		Price: PriceResponse{
			Amount:         l.Price().Amount(),
			Currency:       l.Price().Currency(),
			Formatted:      l.Price().Format(),
			PerSquareMeter: l.PricePerSquareMeter(),
		},
		Type:       l.Type().String(),
		Status:     l.Status().String(),
		Location:   locResp,
		Features:   l.Features().Items(),
		Images:     images,
		IsComplete: l.IsComplete(),
		CreatedAt:  l.CreatedAt(),
		UpdatedAt:  l.UpdatedAt(),
	}
}

func toResponseList(lands []*domain.Land) []*LandResponse {
	responses := make([]*LandResponse, len(lands))
	for i, l := range lands {
		responses[i] = toResponse(l)
	}
	return responses
}

func toImageInputs(reqs []ImageRequest) []domain.ImageInput {
	if len(reqs) == 0 {
		return nil
	}
	inputs := make([]domain.ImageInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = domain.ImageInput{URL: r.URL, Alt: r.Alt, Caption: r.Caption}
	}
	return inputs
}

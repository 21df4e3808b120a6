package mocks

import (
	"context"

	"landlisting/domain/land"
	"landlisting/pkg/logger"

	"go.uber.org/zap"
)

func ptr(f float64) *float64 { return &f }

var sampleLands = []land.CreateLandData{
	{
		Name:        "Beachfront Paradise in Bávaro",
		Description: "Stunning beachfront lot with direct beach access, crystal clear water and white sand. Perfect for a boutique hotel or private villa development in the heart of Bávaro.",
		Area:        2500,
		Price:       500000,
		Currency:    "USD",
		Location:    "Playa Bávaro, Carretera Verón",
		City:        "Punta Cana",
		Province:    "La Altagracia",
		Country:     "Dominican Republic",
		Latitude:    ptr(18.6829),
		Longitude:   ptr(-68.4055),
		Type:        "beachfront",
		Features:    []string{"Beach Access", "Electricity", "Water Access", "Ocean View"},
		Images: []land.ImageInput{
			{URL: "https://images.example.com/bavaro-beachfront-1.jpg", Alt: "Beachfront lot aerial view"},
			{URL: "https://images.example.com/bavaro-beachfront-2.jpg", Alt: "White sand shoreline"},
		},
	},
	{
		Name:        "Commercial Corner Lot Santo Domingo",
		Description: "High-traffic commercial corner on Avenida Winston Churchill, zoned for retail and office development with all utilities in place.",
		Area:        850,
		Price:       425000,
		Currency:    "USD",
		Location:    "Av. Winston Churchill esq. Gustavo Mejía Ricart",
		City:        "Santo Domingo",
		Province:    "Distrito Nacional",
		Country:     "Dominican Republic",
		Latitude:    ptr(18.4718),
		Longitude:   ptr(-69.9405),
		Type:        "commercial",
		Features:    []string{"Road Access", "Electricity", "Corner Lot", "High Traffic"},
		Images: []land.ImageInput{
			{URL: "https://images.example.com/churchill-corner.jpg", Alt: "Commercial corner lot"},
		},
	},
	{
		Name:        "Agricultural Finca in Constanza",
		Description: "Fertile valley farmland with river frontage and irrigation infrastructure, currently planted with vegetables. Cool mountain climate year round.",
		Area:        52000,
		Price:       180000,
		Currency:    "USD",
		Location:    "Valle de Constanza, Camino El Convento",
		City:        "Constanza",
		Province:    "La Vega",
		Country:     "Dominican Republic",
		Type:        "agricultural",
		Features:    []string{"Water Access", "River Frontage", "Irrigation", "Fenced"},
	},
	{
		Name:        "Residential Lot in Las Terrenas",
		Description: "Quiet residential parcel five minutes from Playa Bonita, surrounded by tropical vegetation and ready to build.",
		Area:        1200,
		Price:       95000,
		Currency:    "USD",
		Location:    "Camino a Playa Bonita",
		City:        "Las Terrenas",
		Province:    "Samaná",
		Country:     "Dominican Republic",
		Type:        "residential",
		Features:    []string{"Electricity", "Mountain View"},
	},
}

// SeedSampleData loads the demo listings and publishes the complete ones.
// Intended for the mock repository in development mode.
func SeedSampleData(repo land.Repository) {
	ctx := context.Background()
	for _, data := range sampleLands {
		l, err := land.NewLand(data)
		if err != nil {
			logger.Warn("Skipping invalid seed listing",
				zap.String("name", data.Name),
				zap.Error(err))
			continue
		}

		if l.IsComplete() {
			if err := l.Publish(); err != nil {
				logger.Warn("Seed listing could not be published",
					zap.String("name", data.Name),
					zap.Error(err))
			}
		}

		if err := repo.Save(ctx, l); err != nil {
			logger.Warn("Failed to save seed listing",
				zap.String("name", data.Name),
				zap.Error(err))
		}
	}
}

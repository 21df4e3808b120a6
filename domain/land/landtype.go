package land

import (
	"strings"

	"landlisting/domain/shared"
)

// Type classifies a land parcel. Closed enumeration.
type Type string

const (
	TypeCommercial   Type = "commercial"
	TypeResidential  Type = "residential"
	TypeAgricultural Type = "agricultural"
	TypeBeachfront   Type = "beachfront"
	TypeIndustrial   Type = "industrial"
	TypeMixedUse     Type = "mixed-use"
)

// typeProfile carries the per-type rule data: descriptive text, zoning
// requirements, capability flags and suggested features. Kept as a table so
// new land types extend data, not branching logic.
type typeProfile struct {
	description                  string
	zoningRequirements           []string
	allowsResidentialDevelopment bool
	requiresSpecialPermits       bool
	hasEnvironmentalRestrictions bool
	suggestedFeatures            []string
}

var typeProfiles = map[Type]typeProfile{
	TypeCommercial: {
		description:                  "Commercial land suited for offices, retail and services",
		zoningRequirements:           []string{"Commercial zoning permit", "Business operation license"},
		allowsResidentialDevelopment: false,
		requiresSpecialPermits:       false,
		hasEnvironmentalRestrictions: false,
		suggestedFeatures:            []string{"Road Access", "Electricity", "Water Access", "Corner Lot"},
	},
	TypeResidential: {
		description:                  "Residential land for single or multi-family housing",
		zoningRequirements:           []string{"Residential zoning permit"},
		allowsResidentialDevelopment: true,
		requiresSpecialPermits:       false,
		hasEnvironmentalRestrictions: false,
		suggestedFeatures:            []string{"Road Access", "Electricity", "Water Access", "Quiet Area"},
	},
	TypeAgricultural: {
		description:                  "Agricultural land for farming, livestock or plantations",
		zoningRequirements:           []string{"Agricultural use permit", "Water rights certificate"},
		allowsResidentialDevelopment: false,
		requiresSpecialPermits:       false,
		hasEnvironmentalRestrictions: true,
		suggestedFeatures:            []string{"Water Access", "Fertile Soil", "Irrigation", "Road Access"},
	},
	TypeBeachfront: {
		description:                  "Beachfront land with direct access to the coastline",
		zoningRequirements:           []string{"Coastal development permit", "Environmental impact study", "Maritime zone concession"},
		allowsResidentialDevelopment: true,
		requiresSpecialPermits:       true,
		hasEnvironmentalRestrictions: true,
		suggestedFeatures:            []string{"Beach Access", "Ocean View", "Road Access", "Electricity"},
	},
	TypeIndustrial: {
		description:                  "Industrial land for manufacturing, warehousing and logistics",
		zoningRequirements:           []string{"Industrial zoning permit", "Environmental compliance certificate"},
		allowsResidentialDevelopment: false,
		requiresSpecialPermits:       true,
		hasEnvironmentalRestrictions: true,
		suggestedFeatures:            []string{"Road Access", "Highway Access", "Electricity", "Flat Terrain"},
	},
	TypeMixedUse: {
		description:                  "Mixed-use land combining residential and commercial development",
		zoningRequirements:           []string{"Mixed-use zoning permit"},
		allowsResidentialDevelopment: true,
		requiresSpecialPermits:       false,
		hasEnvironmentalRestrictions: false,
		suggestedFeatures:            []string{"Road Access", "Electricity", "Water Access", "City Center"},
	},
}

// NewType validates a raw value against the closed enumeration.
func NewType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := typeProfiles[t]; !ok {
		return "", shared.NewValidationError("LandType", "value", "invalid land type: "+raw)
	}
	return t, nil
}

// AllTypes lists the valid type variants.
func AllTypes() []Type {
	return []Type{TypeCommercial, TypeResidential, TypeAgricultural, TypeBeachfront, TypeIndustrial, TypeMixedUse}
}

// IsValid reports membership in the enumeration.
func (t Type) IsValid() bool {
	_, ok := typeProfiles[t]
	return ok
}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// Description returns the descriptive text for the type.
func (t Type) Description() string { return typeProfiles[t].description }

// ZoningRequirements lists the permits required to develop this type.
func (t Type) ZoningRequirements() []string {
	reqs := typeProfiles[t].zoningRequirements
	out := make([]string, len(reqs))
	copy(out, reqs)
	return out
}

// AllowsResidentialDevelopment reports whether homes may be built.
func (t Type) AllowsResidentialDevelopment() bool {
	return typeProfiles[t].allowsResidentialDevelopment
}

// RequiresSpecialPermits reports whether extra permits are needed.
func (t Type) RequiresSpecialPermits() bool {
	return typeProfiles[t].requiresSpecialPermits
}

// HasEnvironmentalRestrictions reports whether environmental rules apply.
func (t Type) HasEnvironmentalRestrictions() bool {
	return typeProfiles[t].hasEnvironmentalRestrictions
}

// SuggestedFeatures lists features commonly advertised for this type.
func (t Type) SuggestedFeatures() []string {
	feats := typeProfiles[t].suggestedFeatures
	out := make([]string, len(feats))
	copy(out, feats)
	return out
}

package land

import (
	"math"
	"strings"
	"testing"
)

func TestNewLocationAddressBounds(t *testing.T) {
	if _, err := NewLocation("1234", "", "", "", nil); err == nil {
		t.Error("4-character address should fail")
	}
	if _, err := NewLocation("12345", "", "", "", nil); err != nil {
		t.Errorf("5-character address should pass: %v", err)
	}
	if _, err := NewLocation(strings.Repeat("a", 201), "", "", "", nil); err == nil {
		t.Error("201-character address should fail")
	}
}

func TestNewCoordinatesRanges(t *testing.T) {
	if _, err := NewCoordinates(18.5, -68.4); err != nil {
		t.Errorf("valid coordinates should pass: %v", err)
	}
	invalid := [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}, {math.NaN(), 0}}
	for _, pair := range invalid {
		if _, err := NewCoordinates(pair[0], pair[1]); err == nil {
			t.Errorf("NewCoordinates(%v, %v) should fail", pair[0], pair[1])
		}
	}
}

func TestLocationDominicanRepublicWarning(t *testing.T) {
	inside, err := NewCoordinates(18.6829, -68.4055) // Bávaro
	if err != nil {
		t.Fatalf("NewCoordinates failed: %v", err)
	}
	loc, err := NewLocation("Playa Bávaro, Carretera Verón", "Punta Cana", "La Altagracia", "", &inside)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}
	if len(loc.Warnings()) != 0 {
		t.Errorf("coordinates inside the DR should not warn: %v", loc.Warnings())
	}

	outside, err := NewCoordinates(40.7128, -74.0060) // New York
	if err != nil {
		t.Fatalf("NewCoordinates failed: %v", err)
	}
	loc, err = NewLocation("350 Fifth Avenue", "New York", "NY", "USA", &outside)
	if err != nil {
		t.Fatalf("coordinates outside the DR must not be an error: %v", err)
	}
	if len(loc.Warnings()) != 1 {
		t.Errorf("expected one advisory warning, got %v", loc.Warnings())
	}
}

func TestLocationDistanceTo(t *testing.T) {
	santoDomingo, _ := NewCoordinates(18.4861, -69.9312)
	puntaCana, _ := NewCoordinates(18.5601, -68.3725)

	a, err := NewLocation("Malecón de Santo Domingo", "Santo Domingo", "", "", &santoDomingo)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}
	b, err := NewLocation("Aeropuerto Punta Cana", "Punta Cana", "", "", &puntaCana)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}

	distance := a.DistanceTo(b)
	if distance == nil {
		t.Fatal("expected a distance")
	}
	// Roughly 165 km between the two points.
	if *distance < 150 || *distance > 180 {
		t.Errorf("DistanceTo = %v km, want ≈ 165", *distance)
	}

	noCoords, err := NewLocation("Somewhere in the campo", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}
	if a.DistanceTo(noCoords) != nil {
		t.Error("DistanceTo must be nil when the other side lacks coordinates")
	}
	if noCoords.DistanceTo(b) != nil {
		t.Error("DistanceTo must be nil when this side lacks coordinates")
	}
}

func TestLocationGeohash(t *testing.T) {
	coords, _ := NewCoordinates(18.6829, -68.4055)
	loc, err := NewLocation("Playa Bávaro", "Punta Cana", "", "", &coords)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}
	gh := loc.Geohash()
	if len(gh) != 9 {
		t.Errorf("Geohash() = %q, want 9 characters", gh)
	}

	noCoords, _ := NewLocation("Somewhere in the campo", "", "", "", nil)
	if noCoords.Geohash() != "" {
		t.Error("Geohash must be empty without coordinates")
	}
}

func TestLocationShortForm(t *testing.T) {
	cases := []struct {
		city, province, want string
	}{
		{"Punta Cana", "La Altagracia", "Punta Cana, La Altagracia"},
		{"Punta Cana", "", "Punta Cana"},
		{"", "Samaná", "Samaná"},
		{"", "", "Carretera Verón km 5"},
	}
	for _, tc := range cases {
		loc, err := NewLocation("Carretera Verón km 5", tc.city, tc.province, "", nil)
		if err != nil {
			t.Fatalf("NewLocation failed: %v", err)
		}
		if got := loc.ShortForm(); got != tc.want {
			t.Errorf("ShortForm() = %q, want %q", got, tc.want)
		}
	}
}

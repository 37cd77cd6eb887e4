package swapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound reports a people search that returned no matching result.
	ErrNotFound = errors.New("no matching character")
	// ErrMissingField reports a record without one of its required properties.
	ErrMissingField = errors.New("missing field")
)

// Character holds the person properties returned by the people endpoint.
type Character struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	BirthYear string `json:"birth_year"`
	Homeworld string `json:"homeworld"`
	HairColor string `json:"hair_color,omitempty"`
	SkinColor string `json:"skin_color,omitempty"`
	EyeColor  string `json:"eye_color,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Created   string `json:"created,omitempty"`
	Edited    string `json:"edited,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Validate reports ErrMissingField for the first absent property the lookup relies on.
func (c Character) Validate() error {
	return requireFields(
		field{"name", c.Name},
		field{"height", c.Height},
		field{"mass", c.Mass},
		field{"birth_year", c.BirthYear},
		field{"homeworld", c.Homeworld},
	)
}

// Planet holds the planet properties returned by a homeworld URL.
type Planet struct {
	Name           string `json:"name"`
	Population     string `json:"population"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Diameter       string `json:"diameter,omitempty"`
	Climate        string `json:"climate,omitempty"`
	Gravity        string `json:"gravity,omitempty"`
	Terrain        string `json:"terrain,omitempty"`
	SurfaceWater   string `json:"surface_water,omitempty"`
	URL            string `json:"url,omitempty"`
}

// Validate reports ErrMissingField for the first absent property the lookup relies on.
func (p Planet) Validate() error {
	return requireFields(
		field{"name", p.Name},
		field{"population", p.Population},
		field{"rotation_period", p.RotationPeriod},
		field{"orbital_period", p.OrbitalPeriod},
	)
}

// Rotation parses rotation_period as hours per local day.
func (p Planet) Rotation() (float64, error) {
	return parsePeriod("rotation_period", p.RotationPeriod)
}

// Orbit parses orbital_period as earth days per local year.
func (p Planet) Orbit() (float64, error) {
	return parsePeriod("orbital_period", p.OrbitalPeriod)
}

func parsePeriod(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("planet %s %q is not numeric: %w", field, raw, err)
	}
	return value, nil
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// StatusError reports a non-200 response.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("swapi %s returned %d", e.Endpoint, e.StatusCode)
}

type peopleResponse struct {
	Result []struct {
		Properties Character `json:"properties"`
	} `json:"result"`
}

type planetResponse struct {
	Result *struct {
		Properties Planet `json:"properties"`
	} `json:"result"`
}

package entity

import (
	"strings"

	"friendlyeats/pkg/rating"
)

// Restaurant mirrors a document in the "restaurants" collection. Older
// documents spell location, category and image fields inconsistently, so
// the raw variants are all mapped and resolved through Normalize.
type Restaurant struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`

	Categories []string `json:"categories,omitempty" firestore:"categories"`
	Category   string   `json:"category,omitempty" firestore:"category"`

	// Rating fields may hold a number or a loosely formatted string.
	Rating     interface{} `json:"rating,omitempty" firestore:"rating"`
	StarsGiven interface{} `json:"starsgiven,omitempty" firestore:"starsgiven"`
	Grade      interface{} `json:"grade,omitempty" firestore:"grade"`

	Country     string `json:"country,omitempty" firestore:"country"`
	CountryName string `json:"countryName,omitempty" firestore:"countryName"`
	State       string `json:"state,omitempty" firestore:"state"`
	Province    string `json:"province,omitempty" firestore:"province"`
	Region      string `json:"region,omitempty" firestore:"region"`
	City        string `json:"city,omitempty" firestore:"city"`
	Town        string `json:"town,omitempty" firestore:"town"`
	Locality    string `json:"locality,omitempty" firestore:"locality"`
	Address     string `json:"address,omitempty" firestore:"address"`
	Street      string `json:"street,omitempty" firestore:"street"`

	Photo       string `json:"photo,omitempty" firestore:"photo"`
	ImagePath   string `json:"imagePath,omitempty" firestore:"imagePath"`
	PhotoPath   string `json:"photoPath,omitempty" firestore:"photoPath"`
	StoragePath string `json:"storagePath,omitempty" firestore:"storagePath"`
}

type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// Location resolves the inconsistently named source fields into one
// canonical country/state/city triple without mutating the restaurant.
func (r *Restaurant) Location() Location {
	return Location{
		Country: firstNonEmpty(r.Country, r.CountryName),
		State:   firstNonEmpty(r.State, r.Province, r.Region),
		City:    firstNonEmpty(r.City, r.Town, r.Locality),
	}
}

// CategoryValues returns the restaurant's category labels, falling back
// to the legacy single-label field. Labels are trimmed; empties dropped.
func (r *Restaurant) CategoryValues() []string {
	source := r.Categories
	if len(source) == 0 && r.Category != "" {
		source = []string{r.Category}
	}
	values := make([]string, 0, len(source))
	for _, label := range source {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// RatingValue reads the current average rating. starsgiven wins over
// rating over grade, first non-nil taken, then parsed tolerantly.
func (r *Restaurant) RatingValue() float64 {
	return rating.Parse(firstNonNil(r.StarsGiven, r.Rating, r.Grade))
}

// ImageRef returns whichever image field the document carries. The
// result may be a URL or a storage object path.
func (r *Restaurant) ImageRef() string {
	return firstNonEmpty(r.Photo, r.ImagePath, r.PhotoPath, r.StoragePath)
}

// Normalize collapses every fallback field into its canonical slot. It
// runs once at ingestion so read sites never touch the legacy variants.
func (r *Restaurant) Normalize() {
	loc := r.Location()
	r.Country, r.State, r.City = loc.Country, loc.State, loc.City
	r.CountryName, r.Province, r.Region, r.Town, r.Locality = "", "", "", "", ""

	r.Categories = r.CategoryValues()
	r.Category = ""

	r.Photo = r.ImageRef()
	r.ImagePath, r.PhotoPath, r.StoragePath = "", "", ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"pugorugh/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CatalogEntry is one dog in a seed file.
type CatalogEntry struct {
	Name          string `json:"name"`
	ImageFilename string `json:"image_filename"`
	Breed         string `json:"breed"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Size          string `json:"size"`
}

// LoadCatalogFile reads a JSON array of CatalogEntry.
func LoadCatalogFile(path string) ([]CatalogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var entries []CatalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return entries, nil
}

// NormalizeCatalog converts seed entries into dogs. Entries with an age
// outside (0, 200) or no image are skipped; unknown gender and size codes
// become "u"; names and breeds are trimmed and title-cased.
func NormalizeCatalog(entries []CatalogEntry) []models.Dog {
	title := cases.Title(language.English, cases.NoLower)

	dogs := make([]models.Dog, 0, len(entries))
	for i, e := range entries {
		if !models.ValidAge(e.Age) {
			log.Printf("[CATALOG] ⚠️ Skipping entry %d (%q): age %d out of range", i, e.Name, e.Age)
			continue
		}
		image := strings.TrimSpace(e.ImageFilename)
		if image == "" {
			log.Printf("[CATALOG] ⚠️ Skipping entry %d (%q): missing image_filename", i, e.Name)
			continue
		}
		dogs = append(dogs, models.Dog{
			Name:          title.String(strings.TrimSpace(e.Name)),
			ImageFilename: image,
			Breed:         title.String(strings.TrimSpace(e.Breed)),
			Age:           e.Age,
			Gender:        models.ParseGender(e.Gender),
			Size:          models.ParseSize(e.Size),
		})
	}
	return dogs
}

// SeedCatalog imports the file at path when the catalog is empty and
// returns the number of dogs created. A populated catalog is left alone.
func SeedCatalog(ctx context.Context, store Store, path string) (int, error) {
	n, err := store.CountDogs(ctx)
	if err != nil {
		return 0, fmt.Errorf("count dogs: %w", err)
	}
	if n > 0 {
		log.Printf("[CATALOG] Catalog already has %d dog(s); skipping seed", n)
		return 0, nil
	}

	entries, err := LoadCatalogFile(path)
	if err != nil {
		return 0, err
	}
	dogs := NormalizeCatalog(entries)
	if err := store.CreateDogs(ctx, dogs); err != nil {
		return 0, fmt.Errorf("create dogs: %w", err)
	}
	log.Printf("[CATALOG] ✅ Seeded %d dog(s) from %s", len(dogs), path)
	return len(dogs), nil
}

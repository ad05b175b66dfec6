package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/ariakit/internal/database/repository"
)

// DefaultCatalog is the demo hierarchy. "!" marks a disabled entry.
var DefaultCatalog = []string{
	"Fruit > Apple",
	"Fruit > Apricot",
	"Fruit > Banana",
	"Fruit > Berries > Blackberry",
	"Fruit > Berries > Blueberry",
	"Fruit > Berries > !Cloudberry",
	"Fruit > Cherry",
	"Vegetables > Artichoke",
	"Vegetables > Broccoli",
	"Vegetables > Carrot",
	"Grains > Barley",
	"Grains > Oats",
	"Grains > Rice",
}

// CatalogID is the stable id of the entry at path ("Fruit > Apple").
func CatalogID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalog:"+path)).String()
}

// SeedDefaults ensures the demo catalog exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewCatalogRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	return SeedCatalog(ctx, db, DefaultCatalog)
}

// SeedCatalog upserts every path. Shared prefixes map to the same entries,
// ordered by their first appearance.
func SeedCatalog(ctx context.Context, db *sql.DB, paths []string) error {
	repo := repository.NewCatalogRepo(db)
	seen := map[string]bool{}
	for idx, path := range paths {
		parts := strings.Split(path, ">")
		var parentID *string
		var prefix []string
		for _, raw := range parts {
			name := strings.TrimSpace(raw)
			disabled := strings.HasPrefix(name, "!")
			name = strings.TrimPrefix(name, "!")
			prefix = append(prefix, name)
			id := CatalogID(strings.Join(prefix, " > "))
			if seen[id] {
				parentID = &id
				continue
			}
			seen[id] = true
			e := repository.CatalogEntry{ID: id, ParentID: parentID, Text: name, Disabled: disabled, SortOrder: idx}
			if err := repo.Upsert(ctx, e); err != nil {
				return err
			}
			parentID = &id
		}
	}
	return nil
}

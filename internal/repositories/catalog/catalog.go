package catalog

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
)

// Repository reads one browsable catalog: its entries, the sections of an
// entry and the content page of a section.
type Repository[E any] interface {
	ListEntries(ctx context.Context) ([]E, error)
	ListSections(ctx context.Context, parentID string) ([]domain.Section, error)
	GetContent(ctx context.Context, parentID, sectionID string) (*domain.Content, error)
}

// Tables names the three collections behind a catalog.
type Tables struct {
	Entries      string
	EntryColumns []string
	Sections     string
	Content      string
	// ParentColumn is the foreign key from sections and content to entries.
	ParentColumn string
}

var DeityTables = Tables{
	Entries:      "gods",
	EntryColumns: []string{"id", "name", "description", "image_url", "order_index", "created_at", "updated_at"},
	Sections:     "god_sections",
	Content:      "god_content",
	ParentColumn: "god_id",
}

var ScriptureTables = Tables{
	Entries:      "scriptures",
	EntryColumns: []string{"id", "name", "category", "description", "image_url", "order_index", "created_at", "updated_at"},
	Sections:     "scripture_sections",
	Content:      "scripture_content",
	ParentColumn: "scripture_id",
}

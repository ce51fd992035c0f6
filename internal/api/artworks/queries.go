package artworks

import (
	"strings"

	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"gorm.io/gorm"
)

// publicQuery restricts to publicly visible artworks. The comparison is
// case-insensitive even though writes always store the canonical casing.
func publicQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Artwork{}).
		Where("LOWER(visibility) = ?", "public")
}

// filtered builds the public listing query with all optional filters
// applied. Called once for the count and once for the page, so it has to
// start from a fresh query each time.
func (s *Store) filtered(p ListParams) *gorm.DB {
	q := publicQuery(s.DB)

	if c := strings.TrimSpace(p.Category); c != "" {
		q = q.Where("category = ?", c)
	}
	if e := identity.NormalizeEmail(p.AuthorEmail); e != "" {
		q = q.Where("author_email = ?", e)
	}
	if term := strings.TrimSpace(p.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author_name) LIKE ?", pattern, pattern)
	}

	return q
}

// sortOrder maps a sort key to an ORDER BY clause. Newest-first is the only
// supported order; unrecognized keys silently fall back to it rather than
// erroring.
func sortOrder(key string) string {
	switch key {
	case "newest":
		return "created_at DESC"
	}
	return "created_at DESC"
}

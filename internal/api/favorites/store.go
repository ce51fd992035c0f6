package favorites

import (
	"strings"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/favorites"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

type AddInput struct {
	ArtworkID string `json:"artId"`
	UserEmail string `json:"userEmail"`
}

type AddResult struct {
	InsertedID string `json:"insertedId"`
}

// Add bookmarks an artwork for a user. The (artwork, user) pair is unique;
// a second add is a conflict, never a second row.
func (s *Store) Add(in AddInput) (*AddResult, error) {
	email := identity.NormalizeEmail(in.UserEmail)
	artID := strings.TrimSpace(in.ArtworkID)

	if email == "" {
		return nil, apperr.Invalid("userEmail is required")
	}
	if artID == "" {
		return nil, apperr.Invalid("artId is required")
	}
	if _, err := uuid.Parse(artID); err != nil {
		return nil, apperr.Invalid("invalid artwork id")
	}

	var existing int64
	if err := s.DB.Model(&favorites.Favorite{}).
		Where("artwork_id = ? AND user_email = ?", artID, email).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperr.ErrDuplicate
	}

	fav := favorites.Favorite{ArtworkID: artID, UserEmail: email}
	if err := s.DB.Create(&fav).Error; err != nil {
		return nil, err
	}
	return &AddResult{InsertedID: fav.ID}, nil
}

// ListForUser returns a user's favorites newest-first, each joined with its
// artwork. A favorite whose artwork has since been deleted comes back with
// a nil artwork; dangling references are expected, not an error.
func (s *Store) ListForUser(email string) ([]favorites.Favorite, error) {
	normalized := identity.NormalizeEmail(email)
	if normalized == "" {
		return nil, apperr.Invalid("email is required")
	}

	var favs []favorites.Favorite
	if err := s.DB.
		Where("user_email = ?", normalized).
		Order("created_at DESC").
		Find(&favs).Error; err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return favs, nil
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ArtworkID)
	}

	var arts []catalog.Artwork
	if err := s.DB.Where("id IN ?", ids).Find(&arts).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*catalog.Artwork, len(arts))
	for i := range arts {
		byID[arts[i].ID] = &arts[i]
	}

	for i := range favs {
		favs[i].Artwork = byID[favs[i].ArtworkID]
	}
	return favs, nil
}

type RemoveResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Remove deletes a favorite by its own id. Removing something already gone
// is a no-op result, not an error.
func (s *Store) Remove(id string) (*RemoveResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid favorite id")
	}
	res := s.DB.Delete(&favorites.Favorite{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &RemoveResult{DeletedCount: res.RowsAffected}, nil
}

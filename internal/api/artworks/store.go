package artworks

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	usersapi "github.com/alamin-islam0/artify-server-assignment/internal/api/users"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const featuredLimit = 6

// Store owns the artwork collection. It also carries the user directory for
// the best-effort profile sync that rides along with artwork creation.
type Store struct {
	DB    *gorm.DB
	Users *usersapi.Store
}

func NewStore(db *gorm.DB, users *usersapi.Store) *Store {
	return &Store{DB: db, Users: users}
}

// Create validates and stores a new artwork. The author's directory entry
// is upserted afterwards as a side effect; if that fails the artwork still
// stands.
func (s *Store) Create(in CreateArtworkRequest) (*catalog.Artwork, error) {
	title := strings.TrimSpace(in.Title)
	image := strings.TrimSpace(in.Image)
	name := strings.TrimSpace(in.resolveName())
	email := identity.NormalizeEmail(in.resolveEmail())

	switch {
	case title == "":
		return nil, apperr.Invalid("title is required")
	case image == "":
		return nil, apperr.Invalid("image is required")
	case name == "":
		return nil, apperr.Invalid("author name is required")
	case email == "":
		return nil, apperr.Invalid("author email is required")
	}

	artist := identity.NormalizeEmail(in.Artist)
	if artist == "" {
		artist = email
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Uncategorized"
	}

	art := catalog.Artwork{
		Image:       image,
		Title:       title,
		Category:    category,
		Medium:      strings.TrimSpace(in.Medium),
		Description: strings.TrimSpace(in.Description),
		Dimensions:  strings.TrimSpace(in.Dimensions),
		Price:       in.Price.Value,
		Visibility:  identity.NormalizeVisibility(in.Visibility),
		Featured:    in.Featured,
		AuthorName:  name,
		AuthorEmail: email,
		Artist:      artist,
		AuthorPhoto: in.UserPhoto,
		Likes:       0,
	}

	if err := s.DB.Create(&art).Error; err != nil {
		return nil, err
	}

	if _, err := s.Users.SyncOnLogin(usersapi.SyncInput{
		Email:       email,
		DisplayName: name,
		PhotoURL:    in.UserPhoto,
	}); err != nil {
		log.Printf("user sync after artwork create failed for %s: %v", email, err)
	}

	return &art, nil
}

type ListParams struct {
	Page        int
	Limit       int
	Category    string
	AuthorEmail string
	Search      string
	Sort        string
}

// List returns one page of the public catalog plus the total match count.
// Only Public artworks are ever visible here no matter what filters arrive.
func (s *Store) List(p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}

	var total int64
	if err := s.filtered(p).Count(&total).Error; err != nil {
		return nil, err
	}

	var page []catalog.Artwork
	err := s.filtered(p).
		Order(sortOrder(p.Sort)).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&page).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{Total: total, Page: p.Page, Limit: p.Limit, Data: page}, nil
}

// Featured returns the curated slice: up to six public featured artworks,
// newest first. Not paginated.
func (s *Store) Featured() ([]catalog.Artwork, error) {
	var arts []catalog.Artwork
	err := publicQuery(s.DB).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(featuredLimit).
		Find(&arts).Error
	return arts, err
}

// GetByID loads one artwork together with a derived author summary,
// including a live count of that author's published artworks.
func (s *Store) GetByID(id string) (*catalog.Artwork, *ArtistSummary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, apperr.Invalid("invalid artwork id")
	}

	var art catalog.Artwork
	if err := s.DB.First(&art, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.ErrNotFound
		}
		return nil, nil, err
	}

	var count int64
	if err := s.DB.Model(&catalog.Artwork{}).
		Where("author_email = ?", art.AuthorEmail).
		Count(&count).Error; err != nil {
		return nil, nil, err
	}

	artist := &ArtistSummary{
		Name:         art.AuthorName,
		Email:        art.AuthorEmail,
		Photo:        art.AuthorPhoto,
		ArtworkCount: count,
	}
	return &art, artist, nil
}

// Update applies a partial edit. Likes and createdAt are not editable
// through here; visibility is re-normalized before it lands.
func (s *Store) Update(id string, in UpdateArtworkRequest) (*catalog.Artwork, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid artwork id")
	}

	var art catalog.Artwork
	if err := s.DB.First(&art, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Image != nil {
		updates["image"] = strings.TrimSpace(*in.Image)
	}
	if in.Category != nil {
		updates["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Medium != nil {
		updates["medium"] = *in.Medium
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Dimensions != nil {
		updates["dimensions"] = *in.Dimensions
	}
	if in.Price != nil {
		updates["price"] = in.Price.Value
	}
	if in.Visibility != nil {
		updates["visibility"] = identity.NormalizeVisibility(*in.Visibility)
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}
	updates["updated_at"] = time.Now()

	if err := s.DB.Model(&catalog.Artwork{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.DB.First(&art, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &art, nil
}

// Like bumps the counter with a single atomic increment and returns the new
// count. No read-modify-write: concurrent likes all land.
func (s *Store) Like(id string) (int, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, apperr.Invalid("invalid artwork id")
	}

	res := s.DB.Model(&catalog.Artwork{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperr.ErrNotFound
	}
	return s.currentLikes(id)
}

// Unlike decrements the counter. The guard and the decrement are one
// conditional statement, so racing unlikes can never push the counter
// negative: whichever ones arrive after it hits zero simply match no row.
func (s *Store) Unlike(id string) (int, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, apperr.Invalid("invalid artwork id")
	}

	res := s.DB.Model(&catalog.Artwork{}).
		Where("id = ? AND likes > 0", id).
		UpdateColumn("likes", gorm.Expr("likes - 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := s.DB.Model(&catalog.Artwork{}).
			Where("id = ?", id).
			Count(&exists).Error; err != nil {
			return 0, err
		}
		if exists == 0 {
			return 0, apperr.ErrNotFound
		}
		return 0, apperr.ErrLikesExhausted
	}
	return s.currentLikes(id)
}

func (s *Store) currentLikes(id string) (int, error) {
	var likes int
	err := s.DB.Model(&catalog.Artwork{}).
		Where("id = ?", id).
		Select("likes").
		Scan(&likes).Error
	return likes, err
}

// Delete removes the artwork, then sweeps favorites and reports that point
// at it. The sweep is best-effort: a failure there is logged, not returned,
// and leftover dangling references are tolerated by every reader.
func (s *Store) Delete(id string) (*DeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid artwork id")
	}

	res := s.DB.Delete(&catalog.Artwork{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}

	if err := s.DB.Exec("DELETE FROM favorites WHERE artwork_id = ?", id).Error; err != nil {
		log.Printf("cascade delete of favorites for artwork %s failed: %v", id, err)
	}
	if err := s.DB.Exec("DELETE FROM reports WHERE artwork_id = ?", id).Error; err != nil {
		log.Printf("cascade delete of reports for artwork %s failed: %v", id, err)
	}

	return &DeleteResult{DeletedCount: res.RowsAffected}, nil
}

// TotalLikes sums the like counters across the whole catalog.
func (s *Store) TotalLikes() (int64, error) {
	var total int64
	err := s.DB.Model(&catalog.Artwork{}).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&total).Error
	return total, err
}

// ByAuthor returns everything a single author has published, newest first,
// regardless of visibility. Backs "my artworks" and the author profile.
func (s *Store) ByAuthor(email string) ([]catalog.Artwork, error) {
	var arts []catalog.Artwork
	err := s.DB.
		Where("author_email = ?", identity.NormalizeEmail(email)).
		Order("created_at DESC").
		Find(&arts).Error
	return arts, err
}

package users

import (
	"errors"
	"time"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/users"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the user directory. Email is the canonical key; every lookup and
// write normalizes it first.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

type SyncInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type SyncResult struct {
	User    users.User `json:"user"`
	Created bool       `json:"created"`
}

// SyncOnLogin upserts the user profile as one atomic statement. Role and
// CreatedAt belong to the insert only; DisplayName, PhotoURL and LastLogin
// are refreshed on every login. Doing it as a single ON CONFLICT upsert
// avoids the create/update race of a find-then-save pair.
func (s *Store) SyncOnLogin(in SyncInput) (*SyncResult, error) {
	email := identity.NormalizeEmail(in.Email)
	if email == "" {
		return nil, apperr.Invalid("email is required")
	}

	now := time.Now()
	u := users.User{
		Email:       email,
		DisplayName: in.DisplayName,
		PhotoURL:    in.PhotoURL,
		Role:        identity.RoleUser,
		LastLogin:   now,
	}

	res := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"display_name": in.DisplayName,
			"photo_url":    in.PhotoURL,
			"last_login":   now,
		}),
	}).Create(&u)
	if res.Error != nil {
		return nil, res.Error
	}

	var stored users.User
	if err := s.DB.First(&stored, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return &SyncResult{User: stored, Created: stored.ID == u.ID}, nil
}

type UserWithCount struct {
	users.User
	ArtworkCount int64 `json:"artworkCount"`
}

// ListAll returns every user enriched with a live count of artworks
// authored under that email.
func (s *Store) ListAll() ([]UserWithCount, error) {
	var all []users.User
	if err := s.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, err
	}

	type authorCount struct {
		AuthorEmail string
		Count       int64
	}
	var counts []authorCount
	if err := s.DB.Table("artworks").
		Select("author_email, COUNT(*) as count").
		Group("author_email").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byEmail := make(map[string]int64, len(counts))
	for _, c := range counts {
		byEmail[c.AuthorEmail] = c.Count
	}

	out := make([]UserWithCount, 0, len(all))
	for _, u := range all {
		out = append(out, UserWithCount{User: u, ArtworkCount: byEmail[u.Email]})
	}
	return out, nil
}

// IsAdmin reports whether the email belongs to an Admin. An absent user is
// simply not an admin, not an error.
func (s *Store) IsAdmin(email string) (bool, error) {
	var u users.User
	err := s.DB.First(&u, "email = ?", identity.NormalizeEmail(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == identity.RoleAdmin, nil
}

type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

func (s *Store) SetRole(id string, role string) (*UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid user id")
	}
	canonical, ok := identity.NormalizeRole(role)
	if !ok {
		return nil, apperr.Invalid("role must be Admin or User")
	}

	res := s.DB.Model(&users.User{}).Where("id = ?", id).Update("role", canonical)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return &UpdateResult{ModifiedCount: res.RowsAffected}, nil
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Delete removes the user record only. The user's artworks stay published
// under the denormalized author fields.
func (s *Store) Delete(id string) (*DeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid user id")
	}
	res := s.DB.Delete(&users.User{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &DeleteResult{DeletedCount: res.RowsAffected}, nil
}

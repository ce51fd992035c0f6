package favorites

import (
	"time"

	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a user's bookmark of an artwork. ArtworkID is a weak
// reference: the store never enforces it at the database level, and a
// favorite pointing at a deleted artwork is a tolerated state, not
// corruption.
type Favorite struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"_id"`
	ArtworkID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_art_user" json:"artId"`
	UserEmail string `gorm:"not null;index;uniqueIndex:idx_favorites_art_user" json:"userEmail"`

	CreatedAt time.Time `json:"createdAt"`

	Artwork *catalog.Artwork `gorm:"-" json:"artwork,omitempty"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artwork struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	Image    string `gorm:"not null" json:"image"`
	Title    string `gorm:"not null" json:"title"`
	Category string `gorm:"not null;default:'Uncategorized';index" json:"category"`

	Medium      string `json:"medium"`
	Description string `json:"description"`
	Dimensions  string `json:"dimensions"`

	// Price is NULL when the artist never set one. Absent and 0 are
	// different states and must stay that way.
	Price *float64 `json:"price,omitempty"`

	Visibility string `gorm:"not null;default:'Public';index" json:"visibility"`
	Featured   bool   `gorm:"not null;default:false" json:"featured"`

	AuthorName  string `gorm:"not null" json:"userName"`
	AuthorEmail string `gorm:"not null;index" json:"userEmail"`
	Artist      string `gorm:"not null" json:"artist"`
	AuthorPhoto string `json:"userPhoto,omitempty"`

	Likes int `gorm:"not null;default:0" json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

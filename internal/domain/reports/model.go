package reports

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPending = "pending"

// Report flags an artwork for moderation review. ArtworkID is a weak
// reference, like Favorite's; ArtTitle is denormalized so the moderation
// list still reads sensibly after the artwork is gone.
type Report struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"_id"`
	ArtworkID     string `gorm:"type:uuid;not null;index" json:"artId"`
	ReporterEmail string `gorm:"not null" json:"reporterEmail"`
	Reason        string `gorm:"not null" json:"reason"`
	ArtTitle      string `json:"artTitle"`
	Status        string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

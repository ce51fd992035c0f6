package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"_id"`
	Email       string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`

	// Role is set once on first insert and only ever changed through the
	// admin role endpoint, never by profile sync.
	Role string `gorm:"type:varchar(20);not null;default:'User'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

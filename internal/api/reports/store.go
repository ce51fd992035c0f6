package reports

import (
	"strings"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/reports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

type SubmitInput struct {
	ArtworkID     string `json:"artId"`
	ReporterEmail string `json:"reporterEmail"`
	Reason        string `json:"reason"`
	ArtTitle      string `json:"artTitle"`
}

// Submit files a new moderation report with status pending.
func (s *Store) Submit(in SubmitInput) (*reports.Report, error) {
	artID := strings.TrimSpace(in.ArtworkID)
	email := identity.NormalizeEmail(in.ReporterEmail)
	reason := strings.TrimSpace(in.Reason)

	switch {
	case artID == "":
		return nil, apperr.Invalid("artId is required")
	case email == "":
		return nil, apperr.Invalid("reporterEmail is required")
	case reason == "":
		return nil, apperr.Invalid("reason is required")
	}
	if _, err := uuid.Parse(artID); err != nil {
		return nil, apperr.Invalid("invalid artwork id")
	}

	report := reports.Report{
		ArtworkID:     artID,
		ReporterEmail: email,
		Reason:        reason,
		ArtTitle:      strings.TrimSpace(in.ArtTitle),
		Status:        reports.StatusPending,
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListAll returns the open-reports view, newest first.
func (s *Store) ListAll() ([]reports.Report, error) {
	var all []reports.Report
	err := s.DB.Order("created_at DESC").Find(&all).Error
	return all, err
}

type ResolveResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Resolve removes the report. Resolution here means dropping it from the
// open-reports view entirely; resolving an already-gone report is a no-op.
func (s *Store) Resolve(id string) (*ResolveResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Invalid("invalid report id")
	}
	res := s.DB.Delete(&reports.Report{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &ResolveResult{DeletedCount: res.RowsAffected}, nil
}

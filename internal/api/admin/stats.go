package admin

import (
	"sort"
	"time"

	artworksapi "github.com/alamin-islam0/artify-server-assignment/internal/api/artworks"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/reports"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/users"
	"gorm.io/gorm"
)

// Aggregator computes the admin dashboard numbers. Read-only composition
// over the other stores, recomputed on every call; there is no cache to go
// stale.
type Aggregator struct {
	DB       *gorm.DB
	Artworks *artworksapi.Store
}

func NewAggregator(db *gorm.DB, artworks *artworksapi.Store) *Aggregator {
	return &Aggregator{DB: db, Artworks: artworks}
}

type Contributor struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type GrowthPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Stats struct {
	TotalUsers            int64         `json:"totalUsers"`
	TotalPublicArtworks   int64         `json:"totalPublicArtworks"`
	TotalPrivateArtworks  int64         `json:"totalPrivateArtworks"`
	TotalReportedArtworks int64         `json:"totalReportedArtworks"`
	TotalLikes            int64         `json:"totalLikes"`
	NewArtworksToday      int64         `json:"newArtworksToday"`
	TopContributors       []Contributor `json:"topContributors"`
	ArtworkGrowth         []GrowthPoint `json:"artworkGrowth"`
	UserGrowth            []GrowthPoint `json:"userGrowth"`
}

func (a *Aggregator) Stats() (*Stats, error) {
	var s Stats

	if err := a.DB.Model(&users.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := a.DB.Model(&catalog.Artwork{}).
		Where("LOWER(visibility) = ?", "public").
		Count(&s.TotalPublicArtworks).Error; err != nil {
		return nil, err
	}
	if err := a.DB.Model(&catalog.Artwork{}).
		Where("LOWER(visibility) = ?", "private").
		Count(&s.TotalPrivateArtworks).Error; err != nil {
		return nil, err
	}

	// Distinct artworks under report, not raw report rows: ten reports
	// against one piece count once.
	if err := a.DB.Model(&reports.Report{}).
		Distinct("artwork_id").
		Count(&s.TotalReportedArtworks).Error; err != nil {
		return nil, err
	}

	likes, err := a.Artworks.TotalLikes()
	if err != nil {
		return nil, err
	}
	s.TotalLikes = likes

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := a.DB.Model(&catalog.Artwork{}).
		Where("created_at >= ?", midnight).
		Count(&s.NewArtworksToday).Error; err != nil {
		return nil, err
	}

	if s.TopContributors, err = a.topContributors(); err != nil {
		return nil, err
	}
	if s.ArtworkGrowth, err = a.growth(&catalog.Artwork{}); err != nil {
		return nil, err
	}
	if s.UserGrowth, err = a.growth(&users.User{}); err != nil {
		return nil, err
	}

	return &s, nil
}

// topContributors returns the five most prolific authors with one
// representative display name each. Ordering beyond the count is whatever
// the storage yields, which is all the dashboard needs.
func (a *Aggregator) topContributors() ([]Contributor, error) {
	var top []Contributor
	err := a.DB.Model(&catalog.Artwork{}).
		Select("author_email AS email, MAX(author_name) AS name, COUNT(*) AS count").
		Group("author_email").
		Order("count DESC").
		Limit(5).
		Scan(&top).Error
	return top, err
}

// growth buckets creation timestamps per UTC calendar day, oldest first.
// The grouping happens in Go over plucked timestamps so the query stays
// identical across SQL dialects.
func (a *Aggregator) growth(model interface{}) ([]GrowthPoint, error) {
	var stamps []time.Time
	if err := a.DB.Model(model).Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]int64)
	for _, ts := range stamps {
		byDay[ts.UTC().Format("2006-01-02")]++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]GrowthPoint, 0, len(days))
	for _, day := range days {
		points = append(points, GrowthPoint{Date: day, Count: byDay[day]})
	}
	return points, nil
}

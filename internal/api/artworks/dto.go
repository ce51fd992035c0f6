package artworks

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
)

// Price keeps "no price set" distinct from zero. It accepts a JSON number
// or a numeric string; null, "" and non-numeric text all leave Value nil,
// which is stored as NULL rather than 0.
type Price struct {
	Value *float64
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		p.Value = &f
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	p.Value = &f
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*p.Value)
}

// CreateArtworkRequest mirrors the loose client payloads: the author email
// may arrive under several keys, and the author name under two.
type CreateArtworkRequest struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Medium      string `json:"medium"`
	Description string `json:"description"`
	Dimensions  string `json:"dimensions"`
	Price       Price  `json:"price"`
	Visibility  string `json:"visibility"`
	Featured    bool   `json:"featured"`

	UserName   string `json:"userName"`
	AuthorName string `json:"authorName"`

	UserEmail   string `json:"userEmail"`
	AuthorEmail string `json:"authorEmail"`
	Email       string `json:"email"`
	Artist      string `json:"artist"`

	UserPhoto string `json:"userPhoto"`
}

// resolveEmail picks the author email out of the aliased fields, highest
// priority first.
func (r *CreateArtworkRequest) resolveEmail() string {
	for _, candidate := range []string{r.UserEmail, r.AuthorEmail, r.Email, r.Artist} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func (r *CreateArtworkRequest) resolveName() string {
	if strings.TrimSpace(r.UserName) != "" {
		return r.UserName
	}
	return r.AuthorName
}

// UpdateArtworkRequest carries only the editable fields. Likes and
// createdAt have no representation here on purpose: the counter moves only
// through Like/Unlike and the creation stamp never moves.
type UpdateArtworkRequest struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Medium      *string `json:"medium"`
	Description *string `json:"description"`
	Dimensions  *string `json:"dimensions"`
	Price       *Price  `json:"price"`
	Visibility  *string `json:"visibility"`
	Featured    *bool   `json:"featured"`
}

type ListResult struct {
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Data  []catalog.Artwork `json:"data"`
}

type ArtistSummary struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Photo        string `json:"photo,omitempty"`
	ArtworkCount int64  `json:"artworkCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

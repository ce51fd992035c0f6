package favorites

import (
	"errors"
	"testing"
	"time"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/favorites"
	"github.com/alamin-islam0/artify-server-assignment/internal/testinfra"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedArtwork(t *testing.T, db *gorm.DB, title string) catalog.Artwork {
	t.Helper()
	art := catalog.Artwork{Title: title, Image: "u", Visibility: "Public", Category: "c",
		AuthorName: "Ana", AuthorEmail: "ana@x.com", Artist: "ana@x.com"}
	if err := db.Create(&art).Error; err != nil {
		t.Fatalf("seed artwork: %v", err)
	}
	return art
}

func TestAdd(t *testing.T) {
	t.Run("stores the bookmark and normalizes the email", func(t *testing.T) {
		db := testinfra.OpenDB(t)
		s := NewStore(db)
		art := seedArtwork(t, db, "Sunset")

		result, err := s.Add(AddInput{ArtworkID: art.ID, UserEmail: "Fan@X.com"})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if result.InsertedID == "" {
			t.Error("expected an inserted id")
		}

		var fav favorites.Favorite
		if err := db.First(&fav, "id = ?", result.InsertedID).Error; err != nil {
			t.Fatalf("load favorite: %v", err)
		}
		if fav.UserEmail != "fan@x.com" {
			t.Errorf("UserEmail = %q, want lower-cased", fav.UserEmail)
		}
	})

	t.Run("duplicate pair conflicts and leaves exactly one row", func(t *testing.T) {
		db := testinfra.OpenDB(t)
		s := NewStore(db)
		art := seedArtwork(t, db, "Sunset")

		if _, err := s.Add(AddInput{ArtworkID: art.ID, UserEmail: "fan@x.com"}); err != nil {
			t.Fatalf("first Add: %v", err)
		}
		if _, err := s.Add(AddInput{ArtworkID: art.ID, UserEmail: "FAN@x.com"}); !errors.Is(err, apperr.ErrDuplicate) {
			t.Fatalf("second Add err = %v, want ErrDuplicate", err)
		}

		var count int64
		db.Model(&favorites.Favorite{}).
			Where("artwork_id = ? AND user_email = ?", art.ID, "fan@x.com").
			Count(&count)
		if count != 1 {
			t.Errorf("rows = %d, want exactly 1", count)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		s := NewStore(testinfra.OpenDB(t))
		for name, in := range map[string]AddInput{
			"missing email":  {ArtworkID: uuid.NewString()},
			"missing art id": {UserEmail: "fan@x.com"},
			"malformed id":   {ArtworkID: "abc", UserEmail: "fan@x.com"},
		} {
			if _, err := s.Add(in); !apperr.IsValidation(err) {
				t.Errorf("%s: err = %v, want validation error", name, err)
			}
		}
	})
}

func TestListForUser(t *testing.T) {
	db := testinfra.OpenDB(t)
	s := NewStore(db)

	art1 := seedArtwork(t, db, "First")
	art2 := seedArtwork(t, db, "Second")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := favorites.Favorite{ArtworkID: art1.ID, UserEmail: "fan@x.com", CreatedAt: base}
	recent := favorites.Favorite{ArtworkID: art2.ID, UserEmail: "fan@x.com", CreatedAt: base.Add(time.Hour)}
	dangling := favorites.Favorite{ArtworkID: uuid.NewString(), UserEmail: "fan@x.com", CreatedAt: base.Add(2 * time.Hour)}
	for _, f := range []*favorites.Favorite{&old, &recent, &dangling} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed favorite: %v", err)
		}
	}
	other := favorites.Favorite{ArtworkID: art1.ID, UserEmail: "someone@x.com"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed favorite: %v", err)
	}

	favs, err := s.ListForUser("FAN@x.com")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(favs) != 3 {
		t.Fatalf("len = %d, want 3", len(favs))
	}

	// Newest first; the dangling one joins to a nil artwork without error.
	if favs[0].Artwork != nil {
		t.Errorf("dangling favorite joined to %+v, want nil", favs[0].Artwork)
	}
	if favs[1].Artwork == nil || favs[1].Artwork.Title != "Second" {
		t.Errorf("favs[1].Artwork = %+v", favs[1].Artwork)
	}
	if favs[2].Artwork == nil || favs[2].Artwork.Title != "First" {
		t.Errorf("favs[2].Artwork = %+v", favs[2].Artwork)
	}

	t.Run("missing email", func(t *testing.T) {
		if _, err := s.ListForUser("  "); !apperr.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})
}

func TestRemove(t *testing.T) {
	db := testinfra.OpenDB(t)
	s := NewStore(db)
	art := seedArtwork(t, db, "Sunset")

	added, err := s.Add(AddInput{ArtworkID: art.ID, UserEmail: "fan@x.com"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	result, err := s.Remove(added.InsertedID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", result.DeletedCount)
	}

	t.Run("removing again is a no-op", func(t *testing.T) {
		result, err := s.Remove(added.InsertedID)
		if err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if result.DeletedCount != 0 {
			t.Errorf("DeletedCount = %d, want 0", result.DeletedCount)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		if _, err := s.Remove("not-a-uuid"); !apperr.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	usersapi "github.com/alamin-islam0/artify-server-assignment/internal/api/users"
	"github.com/alamin-islam0/artify-server-assignment/internal/testinfra"
	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *usersapi.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := usersapi.NewStore(testinfra.OpenDB(t))
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(RequireAdmin(store))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r, store
}

func request(r *gin.Engine, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	t.Run("missing identity", func(t *testing.T) {
		r, _ := newGuardedRouter(t)
		if w := request(r, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		r, _ := newGuardedRouter(t)
		if w := request(r, "ghost@x.com"); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("plain user", func(t *testing.T) {
		r, store := newGuardedRouter(t)
		if _, err := store.SyncOnLogin(usersapi.SyncInput{Email: "pleb@x.com"}); err != nil {
			t.Fatal(err)
		}
		if w := request(r, "pleb@x.com"); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("admin passes with any email casing", func(t *testing.T) {
		r, store := newGuardedRouter(t)
		result, err := store.SyncOnLogin(usersapi.SyncInput{Email: "boss@x.com"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := store.SetRole(result.User.ID, "Admin"); err != nil {
			t.Fatal(err)
		}
		if w := request(r, "Boss@X.com"); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

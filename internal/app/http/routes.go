package routes

import (
	adminapi "github.com/alamin-islam0/artify-server-assignment/internal/api/admin"
	artworksapi "github.com/alamin-islam0/artify-server-assignment/internal/api/artworks"
	favoritesapi "github.com/alamin-islam0/artify-server-assignment/internal/api/favorites"
	reportsapi "github.com/alamin-islam0/artify-server-assignment/internal/api/reports"
	usersapi "github.com/alamin-islam0/artify-server-assignment/internal/api/users"
	"github.com/alamin-islam0/artify-server-assignment/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	userStore := usersapi.NewStore(db)
	artworkStore := artworksapi.NewStore(db, userStore)
	favoriteStore := favoritesapi.NewStore(db)
	reportStore := reportsapi.NewStore(db)

	userHandler := usersapi.NewHandler(userStore)
	artworkHandler := artworksapi.NewHandler(artworkStore)
	favoriteHandler := favoritesapi.NewHandler(favoriteStore)
	reportHandler := reportsapi.NewHandler(reportStore)
	adminHandler := adminapi.NewHandler(adminapi.NewAggregator(db, artworkStore))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())

	public.POST("/artworks", artworkHandler.Create)
	public.GET("/artworks", artworkHandler.List)
	public.GET("/artworks/featured", artworkHandler.Featured)
	public.GET("/artworks/author/:email", artworkHandler.ByAuthor)
	public.GET("/artworks/:id", artworkHandler.GetByID)
	public.PATCH("/artworks/:id", artworkHandler.Update)
	public.PATCH("/artworks/:id/like", artworkHandler.Like)
	public.PATCH("/artworks/:id/unlike", artworkHandler.Unlike)
	public.DELETE("/artworks/:id", artworkHandler.Delete)

	public.POST("/favorites", favoriteHandler.Add)
	public.GET("/favorites", favoriteHandler.ListForUser)
	public.DELETE("/favorites/:id", favoriteHandler.Remove)

	public.POST("/users/sync", userHandler.Sync)
	public.GET("/users/admin/:email", userHandler.CheckAdmin)

	public.POST("/reports", reportHandler.Submit)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(userStore))
	admin.GET("/users", userHandler.ListAll)
	admin.PATCH("/users/:id/role", userHandler.SetRole)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/reports", reportHandler.ListAll)
	admin.DELETE("/reports/:id", reportHandler.Resolve)
	admin.GET("/stats", adminHandler.Stats)
}

package routes

import (
	authapi "archarad-app/internal/api/auth"
	contactapi "archarad-app/internal/api/contact"
	galleryapi "archarad-app/internal/api/gallery"
	postcardsapi "archarad-app/internal/api/postcards"
	"archarad-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the shared components the route handlers close over.
type Deps struct {
	Gallery   *galleryapi.Handler
	Postcards *postcardsapi.Handler
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Stored postcard scans.
	r.Static("/uploads", deps.UploadDir)

	// Public browsing surface.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/postcards", deps.Gallery.ListPostcards)
	public.GET("/ui/strings", deps.Gallery.UIStrings)
	public.POST("/ui/language", deps.Gallery.SetLanguage)

	public.POST("/viewer/sessions", deps.Gallery.OpenViewer)
	public.GET("/viewer/sessions/:id", deps.Gallery.ViewerState)
	public.POST("/viewer/sessions/:id/prev", deps.Gallery.ViewerPrev)
	public.POST("/viewer/sessions/:id/next", deps.Gallery.ViewerNext)
	public.POST("/viewer/sessions/:id/close", deps.Gallery.ViewerClose)
	public.POST("/viewer/sessions/:id/key", deps.Gallery.ViewerKey)

	public.POST("/contact", contactapi.Send)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", authapi.Me)
	auth.POST("/change-password", authapi.ChangePassword)

	// Curator routes: the privileged record-mutation path.
	curator := r.Group("/curator")
	curator.Use(middleware.AuthMiddleware(), middleware.RequireCurator())
	curator.GET("/postcards", deps.Postcards.List)
	curator.POST("/postcards", deps.Postcards.Create)
	curator.PUT("/postcards/:id", deps.Postcards.Update)
	curator.DELETE("/postcards/:id", deps.Postcards.Delete)
}

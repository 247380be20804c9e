package main

import (
	"context"
	"log"
	"time"

	"archarad-app/config"
	"archarad-app/database"
	galleryapi "archarad-app/internal/api/gallery"
	postcardsapi "archarad-app/internal/api/postcards"
	routes "archarad-app/internal/app/http"
	"archarad-app/internal/catalog"
	"archarad-app/internal/repository"
	"archarad-app/internal/storage"
	"archarad-app/internal/viewer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store := repository.NewPostcardStore(database.DB)
	blobs, err := storage.NewDiskStore(config.UPLOAD_DIR, config.PUBLIC_BASE_URL+"/uploads")
	if err != nil {
		log.Fatal("❌ Failed to init upload storage:", err)
	}

	cat := catalog.New(store)
	if err := cat.Load(context.Background()); err != nil {
		// The catalog stays empty; the first successful request reloads it.
		log.Println("⚠️ initial catalog load failed:", err)
	}
	viewers := viewer.NewRegistry(cat, viewer.DefaultTTL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Gallery:   galleryapi.NewHandler(cat, viewers),
		Postcards: postcardsapi.NewHandler(store, blobs, cat),
		UploadDir: blobs.Root(),
	})

	r.Run(":" + config.PORT)
}

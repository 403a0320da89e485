package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
	routes "github.com/ledosportsacademy/club-manager-go/routes"
)

func main() {
	cfg := config.Load()

	if err := cfg.Connect(context.Background()); err != nil {
		log.Fatalf("mongodb connection error: %v", err)
	}
	defer func() {
		if err := cfg.MongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("mongodb disconnect error: %v", err)
		}
	}()

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	routes.SetupRoutes(r, cfg)
	serveFrontend(r, cfg.StaticDir)

	log.Printf("server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// serveFrontend serves the built SPA bundle; unknown non-API paths
// fall back to index.html so client-side routing works.
func serveFrontend(r *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		log.Printf("static dir %s not found, serving API only", dir)
		return
	}

	r.Static("/assets", filepath.Join(dir, "assets"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}

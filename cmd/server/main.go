package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/stanislav-shchetinin/security-web/internal/api"
	"github.com/stanislav-shchetinin/security-web/internal/auth"
	"github.com/stanislav-shchetinin/security-web/internal/config"
	"github.com/stanislav-shchetinin/security-web/internal/database"
	"github.com/stanislav-shchetinin/security-web/internal/posts"
	"github.com/stanislav-shchetinin/security-web/internal/server"
	"github.com/stanislav-shchetinin/security-web/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, &users.User{}, &posts.Post{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	userStore := users.NewGormStore(db)
	postStore := posts.NewGormStore(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authCtrl := auth.NewController(auth.NewService(userStore, tokens))
	apiCtrl := api.NewController(posts.NewService(postStore, userStore), userStore)

	r := server.New(tokens, authCtrl, apiCtrl)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

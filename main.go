package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/config"
	_ "github.com/DhavalSuthar-24/scoutkz/docs"
	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/rating"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/internal/video"
	"github.com/DhavalSuthar-24/scoutkz/pkg/videohost"
	"github.com/DhavalSuthar-24/scoutkz/routes"
)

// @title Scout KZ REST API
// @version 1.0
// @description Talent scouting marketplace: player profiles, highlight videos and scout ratings.
// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if cfg.DB.AutoMigrate {
		err := db.AutoMigrate(&user.User{}, &player.Player{}, &video.Video{}, &rating.Rating{})
		if err != nil {
			log.Fatalf("AutoMigrate failed: %v", err)
		}
		log.Println("AutoMigrate successful")
	}

	var host video.Host
	switch cfg.Video.Host {
	case config.HostCloudinary:
		host, err = videohost.NewCloudinaryHost(cfg.Cloudinary)
	default:
		host, err = videohost.NewS3Host(ctx, cfg.Storage)
	}
	if err != nil {
		log.Fatalf("Failed to initialize video host: %v", err)
	}
	log.Printf("Video host: %s", cfg.Video.Host)

	players := player.NewPlayerRepository(db)
	svc := routes.Services{
		Auth:    auth.NewAuthService(auth.NewAuthRepository(db), cfg),
		Players: player.NewPlayerService(players),
		Ratings: rating.NewRatingService(rating.NewRatingRepository(db), players),
		Videos:  video.NewVideoService(video.NewVideoRepository(db), players, host, cfg.Video.MaxPerPlayer, cfg.MaxVideoBytes()),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: routes.SetupRoutes(cfg, svc),
	}

	go func() {
		log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exited")
}

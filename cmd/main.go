package main

import (
	"context"
	"log"

	"github.com/kimtaekyu1204/FoodKcalCheck-v1/config"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/routes"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/services"
	"github.com/kimtaekyu1204/FoodKcalCheck-v1/utils"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	var store services.ImageStore
	if cfg.StorageBackend == "s3" {
		s3Store, err := services.NewS3ImageStore(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalf("S3 image store init failed: %v", err)
		}
		store = s3Store
	} else {
		store = services.NewLocalImageStore(cfg.TrainingImagePath)
	}

	var mailer *utils.Mailer
	if cfg.SESSender != "" {
		m, err := utils.NewMailer(cfg.SESRegion, cfg.SESSender)
		if err != nil {
			log.Printf("Mailer init failed, welcome mail disabled: %v", err)
		} else {
			mailer = m
		}
	}

	if err := services.NewAdminService(db, cfg).EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}

	r := routes.SetupRouter(cfg, db, store, mailer)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

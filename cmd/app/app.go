package app

import (
	"log"

	"github.com/Sky-Wdh/Snuggle/internal/config"
	"github.com/Sky-Wdh/Snuggle/internal/database"
	"github.com/Sky-Wdh/Snuggle/internal/identity"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
	"github.com/Sky-Wdh/Snuggle/internal/service"
	"github.com/Sky-Wdh/Snuggle/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *identity.Client) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	idp := identity.NewClient(cfg)

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services, idp
}

// Command seed inserts demo accounts for local development.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/karankatare99/uber/internal/config"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/karankatare99/uber/internal/repository/postgres"
	"github.com/karankatare99/uber/internal/service"
)

var demoAccounts = []service.RegisterInput{
	{
		FirstName: "Riya",
		LastName:  "Sharma",
		Email:     "rider@example.com",
		Password:  "rider123",
		UserType:  domain.UserTypeRider,
	},
	{
		FirstName: "Dev",
		LastName:  "Patel",
		Email:     "driver@example.com",
		Password:  "driver123",
		UserType:  domain.UserTypeDriver,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	ctx := context.Background()
	for _, account := range demoAccounts {
		result, err := services.Auth.Register(ctx, account)
		if err != nil {
			if errors.Is(err, service.ErrEmailExists) {
				log.Printf("skipping %s: already registered", account.Email)
				continue
			}
			log.Fatalf("failed to seed %s: %v", account.Email, err)
		}
		log.Printf("seeded %s account %s (%s)", result.User.UserType, result.User.Email, result.User.ID)
	}
}

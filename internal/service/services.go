package service

import (
	"github.com/karankatare99/uber/internal/auth"
	"github.com/karankatare99/uber/internal/config"
	"github.com/karankatare99/uber/internal/repository"
)

type Services struct {
	Auth  *AuthService
	Codec *auth.TokenCodec
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.SessionTTL)
	return &Services{
		Auth:  NewAuthService(repos.User, codec),
		Codec: codec,
	}
}

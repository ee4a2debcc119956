package services

import (
	"errors"
	"time"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/repository"
	"github.com/cecepns/nature-coffee/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown username and wrong password,
// so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo      *repository.AdminRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

// Login verifies admin credentials and mints a bearer token.
func (s *AuthService) Login(username, password string) (*entity.Admin, string, error) {
	admin, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lowtide-records/label-api/internal/ports"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	admins ports.AdminRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(admins ports.AdminRepository, secret string) ports.AuthService {
	return &authService{
		admins: admins,
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	hash, err := s.admins.GetAdminHash(ctx, email)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

func (s *authService) ValidateToken(ctx context.Context, raw string) (bool, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return false, nil
	}
	return token.Valid, nil
}

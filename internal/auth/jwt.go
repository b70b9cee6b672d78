package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/trainlog-dev/trainlog/internal/models"
	"github.com/trainlog-dev/trainlog/internal/store"
)

// DefaultTokenTTL is the lifetime of an access token unless overridden at
// issuance.
const DefaultTokenTTL = 60 * time.Minute

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service verifies credentials, issues bearer tokens and resolves them back
// to user records.
type Service struct {
	users  *store.Users
	secret []byte
	ttl    time.Duration
}

func NewService(users *store.Users, secret string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
	}, nil
}

// Login checks the password against the stored hash and issues a token.
// The identity may be an email address or a username.
func (s *Service) Login(identity, password string) (string, error) {
	user, err := s.users.GetByEmail(identity)

	if errors.Is(err, store.ErrNotFound) {
		user, err = s.users.GetByUsername(identity)
	}

	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}

	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.ID, s.ttl)
}

func (s *Service) IssueToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve verifies a token and loads its subject. It returns ErrInvalidToken
// for malformed, expired or tampered tokens and store.ErrNotFound when the
// subject no longer exists.
func (s *Service) Resolve(tokenString string) (models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return models.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)

	if !ok || claims.Subject == "" {
		return models.User{}, ErrInvalidToken
	}

	return s.users.GetByID(claims.Subject)
}

package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminSubject = "admin"
	tokenIssuer  = "nexus-data-service"
)

var (
	// ErrInvalidCredentials is returned when the submitted password does not match.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrInvalidToken is returned when a bearer token is missing, malformed, expired or forged.
	ErrInvalidToken = errors.New("invalid token")
)

// Config controls the admin authenticator.
type Config struct {
	Password string
	// Secret signs tokens. When empty a random secret is generated, so tokens
	// do not survive a restart.
	Secret string
	TTL    time.Duration
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

// Authenticator checks the shared admin password and issues signed session tokens.
type Authenticator struct {
	hash   []byte
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator hashes the configured password once so every check is a
// constant-time bcrypt comparison.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if cfg.Password == "" {
		return nil, errors.New("auth: admin password is required")
	}
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("auth: generate secret: %w", err)
		}
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &Authenticator{
		hash:   hash,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Authenticate compares password against the shared secret and returns a
// freshly signed token on success.
func (a *Authenticator) Authenticate(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.issue()
}

// Verify reports whether token was issued by this authenticator and is still valid.
func (a *Authenticator) Verify(token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

func (a *Authenticator) issue() (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

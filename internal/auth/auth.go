// Package auth implements the stub login/register flow. Any non-empty
// credentials are accepted; the returned token is a real HS256 JWT so
// clients can exercise bearer authentication.
package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidToken       = errors.New("invalid token")
)

// DevSecret signs tokens when no secret is configured.
const DevSecret = "cortex-dev-secret"

// DefaultTTL is the token lifetime.
const DefaultTTL = 24 * time.Hour

const (
	demoUserID   = "u1"
	demoUserName = "Test Student"
)

// User is the account payload returned by login and register.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Token  string `json:"token,omitempty"`
}

// AvatarURL returns a generated-initials avatar for name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.PathEscape(name) + "&background=0D8ABC&color=fff"
}

// Service issues and verifies tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

func WithTTL(d time.Duration) Option { return func(s *Service) { s.ttl = d } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(secret string, opts ...Option) *Service {
	if secret == "" {
		secret = DevSecret
	}
	s := &Service{secret: []byte(secret), ttl: DefaultTTL, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Login accepts any non-empty email and password and returns the demo user.
func (s *Service) Login(email, password string) (User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	u := User{
		ID:     demoUserID,
		Name:   demoUserName,
		Email:  email,
		Avatar: AvatarURL(demoUserName),
	}
	return s.withToken(u)
}

// Register fabricates a user whose ID derives from the current time.
func (s *Service) Register(name, email, password string) (User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrMissingFields
	}
	u := User{
		ID:     fmt.Sprintf("u%d", s.now().UnixMilli()),
		Name:   name,
		Email:  email,
		Avatar: AvatarURL(name),
	}
	return s.withToken(u)
}

func (s *Service) withToken(u User) (User, error) {
	tok, err := s.Issue(u)
	if err != nil {
		return User{}, err
	}
	u.Token = tok
	return u, nil
}

// Issue signs a token carrying the user's identity.
func (s *Service) Issue(u User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":    u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"avatar": u.Avatar,
		"jti":    uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token, optionally prefixed with "Bearer ", and returns
// the user it was issued for. The returned user has no Token set.
func (s *Service) Parse(token string) (User, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer"))
	if token == "" {
		return User{}, ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrInvalidToken
	}
	id, _ := claims["sub"].(string)
	if id == "" {
		return User{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	avatar, _ := claims["avatar"].(string)
	return User{ID: id, Name: name, Email: email, Avatar: avatar}, nil
}

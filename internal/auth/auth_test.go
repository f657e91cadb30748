package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.UnixMilli(1700000000000)

func clock() time.Time { return fixed }

func TestLogin(t *testing.T) {
	s := NewService("secret", WithClock(clock))

	u, err := s.Login("ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Test Student", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Test%20Student&background=0D8ABC&color=fff", u.Avatar)
	assert.NotEmpty(t, u.Token)

	for _, tc := range [][2]string{{"", "pw"}, {"a@b.c", ""}, {"  ", "pw"}} {
		_, err := s.Login(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc)
	}
}

func TestRegister(t *testing.T) {
	s := NewService("secret", WithClock(clock))

	u, err := s.Register("Grace Hopper", "grace@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1700000000000", u.ID)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Grace%20Hopper&background=0D8ABC&color=fff", u.Avatar)

	_, err = s.Register("", "grace@example.com", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestParse_RoundTrip(t *testing.T) {
	s := NewService("secret", WithClock(clock))
	u, err := s.Register("Grace Hopper", "grace@example.com", "pw")
	require.NoError(t, err)

	got, err := s.Parse("Bearer " + u.Token)
	require.NoError(t, err)
	u.Token = ""
	assert.Equal(t, u, got)

	got, err = s.Parse(u.Token)
	if err == nil {
		t.Fatalf("empty token parsed as %+v", got)
	}
}

func TestParse_Rejects(t *testing.T) {
	s := NewService("secret", WithClock(clock))
	u, err := s.Login("a@b.c", "pw")
	require.NoError(t, err)

	other := NewService("other", WithClock(clock))
	_, err = other.Parse(u.Token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "wrong secret")

	later := NewService("secret", WithClock(func() time.Time { return fixed.Add(DefaultTTL + time.Minute) }))
	_, err = later.Parse(u.Token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "expired")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Parse(none)
	assert.True(t, errors.Is(err, ErrInvalidToken), "alg none")

	_, err = s.Parse("garbage")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNewService_DefaultSecret(t *testing.T) {
	a := NewService("")
	b := NewService(DevSecret)
	u, err := a.Login("a@b.c", "pw")
	require.NoError(t, err)
	_, err = b.Parse(u.Token)
	assert.NoError(t, err)
}

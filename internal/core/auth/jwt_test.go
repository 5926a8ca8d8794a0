package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "gescon", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer()

	tok, err := j.Issue("amine", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "amine", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "gescon", claims.Issuer)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("amine", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("autre-secret"), Issuer: "gescon", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("amine", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: j.Secret, Issuer: "autre", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	// TTL négatif au-delà de la tolérance de 60s.
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "gescon", TTL: -2 * time.Minute}
	tok, err := j.Issue("amine", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("pas.un.jwt")
	assert.Error(t, err)
}

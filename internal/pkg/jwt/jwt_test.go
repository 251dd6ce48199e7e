package jwt

import (
	"strings"
	"testing"

	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestIssueAndVerify(t *testing.T) {
	userID := uuid.New()

	token, err := Issue(userID, "alice", domain.RoleUser, testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Verify(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "phonestore-api", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Issue(uuid.New(), "alice", domain.RoleUser, testSecret, 1)
	require.NoError(t, err)

	_, err = Verify(token, "another-secret")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyTamperedSignature(t *testing.T) {
	token, err := Issue(uuid.New(), "alice", domain.RoleUser, testSecret, 1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = Verify(tampered, testSecret)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyExpired(t *testing.T) {
	// A negative TTL puts the expiry in the past.
	token, err := Issue(uuid.New(), "alice", domain.RoleUser, testSecret, -1)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	// A zero TTL expires at issuance; a token is invalid the moment the
	// current time reaches the expiry timestamp.
	token, err := Issue(uuid.New(), "alice", domain.RoleUser, testSecret, 0)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"a.b",
		"only.two.parts.and.more",
	}

	for _, raw := range cases {
		_, err := Verify(raw, testSecret)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

func TestClaimsPrincipal(t *testing.T) {
	userID := uuid.New()

	token, err := Issue(userID, "bob", domain.RoleAdmin, testSecret, 1)
	require.NoError(t, err)

	claims, err := Verify(token, testSecret)
	require.NoError(t, err)

	principal := claims.Principal()
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "bob", principal.Username)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
}

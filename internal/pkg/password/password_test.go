package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Secret@123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret@123", hash)

	assert.True(t, Verify("Secret@123", hash))
	assert.False(t, Verify("Secret@124", hash))
	assert.False(t, Verify("", hash))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Secret@123", true},
		{"valid all special chars", "Aa1@#$%^&+=!", true},
		{"too short", "Se@1cr", false},
		{"exactly min length", "Secret@1", true},
		{"no uppercase", "secret@123", false},
		{"no lowercase", "SECRET@123", false},
		{"no digit", "Secret@abc", false},
		{"no special char", "Secret123", false},
		{"contains space", "Secret@ 123", false},
		{"contains tab", "Secret@\t123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.password))
		})
	}
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerify(t *testing.T) {
	creds, err := NewStatic("admin", "admin123")
	require.NoError(t, err)

	assert.True(t, creds.Verify("admin", "admin123"))
	assert.False(t, creds.Verify("admin", "wrong"))
	assert.False(t, creds.Verify("root", "admin123"))
	assert.False(t, creds.Verify("", ""))
}

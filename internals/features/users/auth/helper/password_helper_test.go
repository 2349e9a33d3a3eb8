// file: internals/features/users/auth/helper/password_helper_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", digest)

	assert.NoError(t, CheckPasswordHash(digest, "s3cret"))
	assert.Error(t, CheckPasswordHash(digest, "wrong"))
}

func TestBcryptCredentialPolicyCachesDigest(t *testing.T) {
	policy := &BcryptCredentialPolicy{Plaintext: "123"}

	first, err := policy.DefaultCredential()
	require.NoError(t, err)
	require.NoError(t, CheckPasswordHash(first, "123"))

	second, err := policy.DefaultCredential()
	require.NoError(t, err)
	assert.Equal(t, first, second, "digest is computed once and reused")
}

package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeader_RoundTrip(t *testing.T) {
	header := EncodeHeader(SchemeServer, "access", "secret")
	assert.Equal(t, "OMGServer "+base64.StdEncoding.EncodeToString([]byte("access:secret")), header)

	creds, err := ParseHeader(header)
	require.NoError(t, err)
	assert.Equal(t, SchemeServer, creds.Scheme)
	assert.Equal(t, "access", creds.ID)
	assert.Equal(t, "secret", creds.Secret)
}

func TestParseHeader_ClientScheme(t *testing.T) {
	creds, err := ParseHeader(EncodeHeader(SchemeClient, "api_key", "auth:token"))
	require.NoError(t, err)
	assert.Equal(t, SchemeClient, creds.Scheme)
	assert.Equal(t, "api_key", creds.ID)
	assert.Equal(t, "auth:token", creds.Secret)
}

func TestParseHeader_Errors(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{"empty", "", ErrMissingHeader},
		{"no credentials", "OMGServer", ErrMalformedCredentials},
		{"bearer", "Bearer abc.def.ghi", ErrInvalidAuthScheme},
		{"lowercase scheme", "omgserver " + base64.StdEncoding.EncodeToString([]byte("a:b")), ErrInvalidAuthScheme},
		{"not base64", "OMGClient %%%", ErrMalformedCredentials},
		{"no separator", "OMGClient " + base64.StdEncoding.EncodeToString([]byte("ab")), ErrMalformedCredentials},
		{"empty secret", "OMGClient " + base64.StdEncoding.EncodeToString([]byte("a:")), ErrMalformedCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.header)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestHashSecret_Verify(t *testing.T) {
	hash, err := HashSecret("test_secret_key")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifySecret("test_secret_key", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifySecret("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashSecret_UniqueSalt(t *testing.T) {
	a, err := HashSecret("same")
	require.NoError(t, err)
	b, err := HashSecret("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifySecret_InvalidHash(t *testing.T) {
	_, err := VerifySecret("x", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = VerifySecret("x", "$argon2id$v=1$m=1,t=1,p=1$AAAA$AAAA")
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey(32)
	require.NoError(t, err)
	b, err := GenerateKey(32)
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}

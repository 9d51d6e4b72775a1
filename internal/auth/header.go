// Package auth parses and builds the authorization headers used by the
// eWallet API and hashes the secrets behind them.
package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Authorization schemes.
const (
	SchemeServer = "OMGServer"
	SchemeClient = "OMGClient"
)

var (
	ErrMissingHeader        = errors.New("authorization header missing")
	ErrInvalidAuthScheme    = errors.New("invalid authorization scheme")
	ErrMalformedCredentials = errors.New("malformed credentials")
)

// Credentials is a decoded authorization header. For OMGServer the pair is
// access key and secret key, for OMGClient it is API key and auth token.
type Credentials struct {
	Scheme string
	ID     string
	Secret string
}

// ParseHeader decodes "<Scheme> <base64(id:secret)>".
func ParseHeader(value string) (*Credentials, error) {
	if value == "" {
		return nil, ErrMissingHeader
	}

	parts := strings.SplitN(strings.TrimSpace(value), " ", 2)
	if len(parts) != 2 {
		return nil, ErrMalformedCredentials
	}

	scheme := parts[0]
	if scheme != SchemeServer && scheme != SchemeClient {
		return nil, ErrInvalidAuthScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, ErrMalformedCredentials
	}

	id, secret, ok := strings.Cut(string(decoded), ":")
	if !ok || id == "" || secret == "" {
		return nil, ErrMalformedCredentials
	}

	return &Credentials{Scheme: scheme, ID: id, Secret: secret}, nil
}

// EncodeHeader builds the header value for scheme.
func EncodeHeader(scheme, id, secret string) string {
	return scheme + " " + base64.StdEncoding.EncodeToString([]byte(id+":"+secret))
}

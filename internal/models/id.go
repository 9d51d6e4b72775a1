package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"
)

// External id prefixes.
const (
	PrefixUser     = "usr"
	PrefixAccount  = "acc"
	PrefixKey      = "key"
	PrefixAPIKey   = "api"
	PrefixToken    = "tok"
	PrefixMint     = "mnt"
	PrefixTransfer = "txn"
)

// NewExternalID returns a prefixed, lowercase ULID such as usr_01h2x...
func NewExternalID(prefix string) string {
	return prefix + "_" + strings.ToLower(ulid.Make().String())
}

// NewAddress returns a fresh wallet address.
func NewAddress() string {
	return strings.ToLower(ulid.Make().String())
}

// Metadata is a free-form JSON object stored in a text column.
type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *Metadata) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("unsupported metadata column type")
	}

	if len(data) == 0 {
		*m = Metadata{}
		return nil
	}
	return json.Unmarshal(data, m)
}

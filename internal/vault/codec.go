package vault

import (
	"bytes"
	"encoding/json"
	"fmt"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

// Codec converts the full record collection to and from its on-disk bytes.
type Codec interface {
	Encode(entries []Entry) ([]byte, error)
	Decode(data []byte) ([]Entry, error)
}

// JSONCodec stores the vault as a plaintext JSON array of entries.
type JSONCodec struct{}

// rawEntry detects missing fields, which encoding/json would otherwise zero-fill.
type rawEntry struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (JSONCodec) Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrSerialization, err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) ([]Entry, error) {
	if isSealed(data) {
		return nil, kerrors.ErrSealed
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrSerialization, err)
	}
	// A literal null would unmarshal cleanly but is not a record collection.
	if raw == nil && !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, fmt.Errorf("%w: expected a JSON array", kerrors.ErrSerialization)
	}

	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		if r.Name == nil || r.Password == nil {
			return nil, fmt.Errorf("%w: record %d is missing name or password", kerrors.ErrSerialization, i)
		}
		entries = append(entries, Entry{Name: *r.Name, Password: *r.Password})
	}
	return entries, nil
}

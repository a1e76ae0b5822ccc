package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length is the size of every generated id.
const Length = 26

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random identifier.
func NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}

// Parse recovers the UUID behind an id produced by NewID.
func Parse(raw string) (uuid.UUID, error) {
	if len(raw) != Length || raw != strings.ToLower(raw) {
		return uuid.Nil, fmt.Errorf("parse id %q: malformed", raw)
	}
	decoded, err := encoding.DecodeString(strings.ToUpper(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id %q: %w", raw, err)
	}
	u, err := uuid.FromBytes(decoded)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return u, nil
}

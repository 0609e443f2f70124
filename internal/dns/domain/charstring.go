package domain

import (
	"errors"
	"fmt"
)

// ErrStringTooLong indicates a character-string larger than 255 bytes.
var ErrStringTooLong = errors.New("character-string exceeds 255 bytes")

// CharacterString is a single length octet followed by that many bytes of
// raw data (RFC 1035 §3.3). Content is treated as binary and caps at 255
// bytes, distinct from a Name which chains several length-prefixed labels
// plus a terminator.
type CharacterString []byte

// NewCharacterString validates and constructs a CharacterString.
func NewCharacterString(data []byte) (CharacterString, error) {
	if len(data) > 255 {
		return nil, fmt.Errorf("%w: got %d", ErrStringTooLong, len(data))
	}
	s := make(CharacterString, len(data))
	copy(s, data)
	return s, nil
}

// String renders the content as text.
func (s CharacterString) String() string {
	return string(s)
}

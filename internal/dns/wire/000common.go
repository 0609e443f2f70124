package wire

import (
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeCharacterString reads one length-prefixed character-string from the
// start of b and returns it with the number of bytes consumed.
func decodeCharacterString(b []byte) (domain.CharacterString, int, error) {
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("%w: missing character-string", ErrTruncatedRecord)
	}
	length := int(b[0])
	if 1+length > len(b) {
		return nil, 0, fmt.Errorf("%w: length %d", ErrBadStringLength, length)
	}
	s, err := domain.NewCharacterString(b[1 : 1+length])
	if err != nil {
		return nil, 0, err
	}
	return s, 1 + length, nil
}

// encodeCharacterString serializes a character-string as <len><bytes>.
func encodeCharacterString(s domain.CharacterString) []byte {
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, byte(len(s)))
	return append(buf, s...)
}

// decodeRDataName decodes a single domain name occupying the start of an
// RDATA region. Pointer offsets inside RDATA are absolute into the message
// buffer and are preserved unexpanded, matching decode of owner names
// before expansion.
func decodeRDataName(b []byte) (domain.Name, int, error) {
	return decodeName(b, 0)
}

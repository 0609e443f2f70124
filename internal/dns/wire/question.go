package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeQuestion parses one question section entry starting at offset and
// returns it with the number of bytes consumed.
func decodeQuestion(data []byte, offset int) (domain.Question, int, error) {
	name, n, err := decodeName(data, offset)
	if err != nil {
		return domain.Question{}, 0, err
	}
	cursor := offset + n

	switch remaining := len(data) - cursor; {
	case remaining < 2:
		return domain.Question{}, 0, ErrMissingTypeAndClass
	case remaining < 4:
		return domain.Question{}, 0, ErrMissingClass
	}

	qtype := domain.QType(binary.BigEndian.Uint16(data[cursor : cursor+2]))
	qclass := domain.QClass(binary.BigEndian.Uint16(data[cursor+2 : cursor+4]))
	if !qtype.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("%w: %d", ErrUnregisteredType, qtype)
	}
	if !qclass.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("%w: %d", ErrUnregisteredClass, qclass)
	}

	q := domain.Question{Name: name, Type: qtype, Class: qclass}
	return q, n + 4, nil
}

// encodeQuestion serializes one question section entry.
func encodeQuestion(q domain.Question) []byte {
	buf := encodeName(q.Name)
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Class))
	return buf
}

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// headerSize is the fixed length of a DNS message header.
const headerSize = 12

// Flag bit layout of the second 16-bit header word (RFC 1035 §4.1.1):
// QR(1) OPCODE(4) AA(1) TC(1) RD(1) RA(1) Z(3) RCODE(4).
const (
	flagQR     = 1 << 15
	flagAA     = 1 << 10
	flagTC     = 1 << 9
	flagRD     = 1 << 8
	flagRA     = 1 << 7
	opCodeMask = 0b0111_1000_0000_0000
	zMask      = 0b0000_0000_0111_0000
	rCodeMask  = 0b0000_0000_0000_1111
)

// decodeHeader parses the fixed 12-byte header. Reserved operation codes
// (3-15), reserved response codes (6-15), and non-zero Z bits are hard
// errors, never coerced.
func decodeHeader(data []byte) (domain.Header, error) {
	if len(data) != headerSize {
		return domain.Header{}, fmt.Errorf("%w: got %d", ErrHeaderSize, len(data))
	}

	flags := binary.BigEndian.Uint16(data[2:4])

	h := domain.Header{
		ID:                  binary.BigEndian.Uint16(data[0:2]),
		Type:                domain.PacketTypeQuery,
		OpCode:              domain.OpCode((flags & opCodeMask) >> 11),
		AuthoritativeAnswer: flags&flagAA != 0,
		Truncated:           flags&flagTC != 0,
		RecursionDesired:    flags&flagRD != 0,
		RecursionAvailable:  flags&flagRA != 0,
		RCode:               domain.RCode(flags & rCodeMask),
		QuestionCount:       binary.BigEndian.Uint16(data[4:6]),
		AnswerCount:         binary.BigEndian.Uint16(data[6:8]),
		AuthorityCount:      binary.BigEndian.Uint16(data[8:10]),
		AdditionalCount:     binary.BigEndian.Uint16(data[10:12]),
	}
	if flags&flagQR != 0 {
		h.Type = domain.PacketTypeResponse
	}

	if !h.OpCode.IsValid() {
		return domain.Header{}, fmt.Errorf("%w: %d", ErrReservedOpCode, h.OpCode)
	}
	if z := (flags & zMask) >> 4; z != 0 {
		return domain.Header{}, fmt.Errorf("%w: got %d", ErrReservedZFlag, z)
	}
	if !h.RCode.IsValid() {
		return domain.Header{}, fmt.Errorf("%w: %d", ErrReservedRCode, h.RCode)
	}

	return h, nil
}

// encodeHeader packs a header into its 12-byte wire form.
func encodeHeader(h domain.Header) [headerSize]byte {
	var flags uint16
	if h.Type == domain.PacketTypeResponse {
		flags |= flagQR
	}
	flags |= uint16(h.OpCode) << 11
	if h.AuthoritativeAnswer {
		flags |= flagAA
	}
	if h.Truncated {
		flags |= flagTC
	}
	if h.RecursionDesired {
		flags |= flagRD
	}
	if h.RecursionAvailable {
		flags |= flagRA
	}
	flags |= uint16(h.RCode) & rCodeMask

	var buf [headerSize]byte
	binary.BigEndian.PutUint16(buf[0:2], h.ID)
	binary.BigEndian.PutUint16(buf[2:4], flags)
	binary.BigEndian.PutUint16(buf[4:6], h.QuestionCount)
	binary.BigEndian.PutUint16(buf[6:8], h.AnswerCount)
	binary.BigEndian.PutUint16(buf[8:10], h.AuthorityCount)
	binary.BigEndian.PutUint16(buf[10:12], h.AdditionalCount)
	return buf
}

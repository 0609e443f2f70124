package wire

import (
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// Compression pointers replace a name suffix with a 2-byte back-reference:
// the top two bits of the length octet are 11 and the remaining 14 bits form
// an absolute offset into the message buffer (RFC 1035 §4.1.4).
const pointerMask = 0xC0

// decodeName reads one domain name starting at offset and returns it along
// with the number of bytes consumed. A zero length octet terminates the name
// as the root label; a pointer octet terminates it as a back-reference,
// which is recorded but not followed here (see expandName).
func decodeName(data []byte, offset int) (domain.Name, int, error) {
	var name domain.Name
	cursor := offset

	for {
		if cursor >= len(data) {
			return domain.Name{}, 0, fmt.Errorf("%w: offset %d", ErrIncompleteName, cursor)
		}

		length := data[cursor]
		switch {
		case length == 0:
			cursor++
			return name, cursor - offset, nil

		case length&pointerMask == pointerMask:
			if cursor+1 >= len(data) {
				return domain.Name{}, 0, fmt.Errorf("%w: pointer at %d is cut off", ErrIncompleteName, cursor)
			}
			target := uint16(length&^pointerMask)<<8 | uint16(data[cursor+1])
			name.Labels = append(name.Labels, domain.NewPointerLabel(target))
			cursor += 2
			return name, cursor - offset, nil

		default:
			end := cursor + 1 + int(length)
			if end > len(data) {
				return domain.Name{}, 0, fmt.Errorf("%w: length %d at offset %d", ErrBadLabelLength, length, cursor)
			}
			label, err := domain.NewLabel(data[cursor+1 : end])
			if err != nil {
				return domain.Name{}, 0, err
			}
			name.Labels = append(name.Labels, label)
			cursor = end
		}
	}
}

// expandName replaces a trailing compression pointer with the label sequence
// found at the referenced offset in the full message buffer, repeating while
// the expanded suffix itself ends in a pointer. nameStart is the absolute
// offset at which the name was decoded; pointer offsets are absolute, so
// expansion always runs against the entire original buffer.
//
// Termination is guaranteed by requiring every pointer to reference an
// offset strictly lower than the pointer's own position, and a visited set
// rejects reference cycles outright.
func expandName(name *domain.Name, data []byte, nameStart int) error {
	if !name.EndsInPointer() {
		return nil
	}

	// Absolute position of the trailing pointer: every label before it is
	// a literal occupying its length octet plus content.
	pos := nameStart
	for _, l := range name.Labels[:len(name.Labels)-1] {
		pos += 1 + len(l.Value())
	}

	visited := make(map[int]bool)
	for name.EndsInPointer() {
		target := int(name.Labels[len(name.Labels)-1].Offset())
		if target >= pos {
			return fmt.Errorf("%w: pointer at %d references %d", ErrForwardPointer, pos, target)
		}
		if visited[target] {
			return fmt.Errorf("%w: offset %d", ErrPointerCycle, target)
		}
		visited[target] = true

		suffix, n, err := decodeName(data, target)
		if err != nil {
			return fmt.Errorf("expanding pointer to %d: %w", target, err)
		}
		name.Labels = append(name.Labels[:len(name.Labels)-1], suffix.Labels...)

		// If the suffix ends in another pointer, that pointer occupies the
		// last two bytes of the decoded region.
		pos = target + n - 2
	}
	return nil
}

// encodeName serializes a name as length-prefixed labels. A trailing
// pointer label already terminates the name, so the root octet is only
// appended after a literal label sequence. Compression is never synthesized
// here; pointer labels are emitted only when the caller constructed them.
func encodeName(name domain.Name) []byte {
	var buf []byte
	for _, l := range name.Labels {
		if l.IsPointer() {
			offset := l.Offset()
			buf = append(buf, pointerMask|byte(offset>>8), byte(offset))
			return buf
		}
		buf = append(buf, byte(len(l.Value())))
		buf = append(buf, l.Value()...)
	}
	return append(buf, 0)
}

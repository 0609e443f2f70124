package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLabelSize is the largest literal label content allowed in a Name.
// Labels are length-prefixed with a single octet, so content caps at 255.
const MaxLabelSize = 255

var (
	// ErrLabelTooLong indicates a literal label larger than MaxLabelSize.
	ErrLabelTooLong = errors.New("label exceeds 255 bytes")

	// ErrEmptyLabel indicates an empty segment in a domain name string,
	// e.g. "a..b" or a leading/trailing dot.
	ErrEmptyLabel = errors.New("domain name contains an empty label")
)

// Label is one element of a domain name: either a literal byte string of
// 0-255 bytes, or a compression pointer holding a 14-bit absolute offset
// into the enclosing message buffer.
type Label struct {
	value   []byte
	offset  uint16
	pointer bool
}

// NewLabel constructs a literal label, rejecting content over MaxLabelSize.
func NewLabel(value []byte) (Label, error) {
	if len(value) > MaxLabelSize {
		return Label{}, fmt.Errorf("%w: got %d", ErrLabelTooLong, len(value))
	}
	v := make([]byte, len(value))
	copy(v, value)
	return Label{value: v}, nil
}

// NewPointerLabel constructs a compression pointer label referencing an
// absolute byte offset in the message buffer. Only the low 14 bits are
// representable on the wire.
func NewPointerLabel(offset uint16) Label {
	return Label{offset: offset & 0x3FFF, pointer: true}
}

// IsPointer reports whether the label is a compression pointer.
func (l Label) IsPointer() bool {
	return l.pointer
}

// Offset returns the absolute buffer offset of a pointer label.
// It is only meaningful when IsPointer is true.
func (l Label) Offset() uint16 {
	return l.offset
}

// Value returns the literal label content.
func (l Label) Value() []byte {
	return l.value
}

// String renders the label for display.
func (l Label) String() string {
	if l.pointer {
		return fmt.Sprintf("@%d", l.offset)
	}
	return string(l.value)
}

// Name is a domain name: an ordered sequence of labels. A name terminates
// either with the root label (implicit, emitted as a zero byte on the wire)
// or with a pointer label, which references the remainder of the name
// elsewhere in the message buffer.
type Name struct {
	Labels []Label
}

// ParseName splits a presentation-format domain name ("www.example.com")
// into a Name of literal labels. Empty segments are invalid.
func ParseName(s string) (Name, error) {
	var labels []Label
	for _, segment := range strings.Split(s, ".") {
		if segment == "" {
			return Name{}, fmt.Errorf("%w: %q", ErrEmptyLabel, s)
		}
		label, err := NewLabel([]byte(segment))
		if err != nil {
			return Name{}, err
		}
		labels = append(labels, label)
	}
	return Name{Labels: labels}, nil
}

// EndsInPointer reports whether the name terminates with a compression
// pointer instead of the root label.
func (n Name) EndsInPointer() bool {
	if len(n.Labels) == 0 {
		return false
	}
	return n.Labels[len(n.Labels)-1].IsPointer()
}

// String renders the name in presentation format. Pointer labels render as
// "@offset" since their content is not known without the message buffer.
func (n Name) String() string {
	parts := make([]string, 0, len(n.Labels))
	for _, l := range n.Labels {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ".")
}

// Equal reports whether two names carry the same label sequence.
func (n Name) Equal(other Name) bool {
	if len(n.Labels) != len(other.Labels) {
		return false
	}
	for i, l := range n.Labels {
		o := other.Labels[i]
		if l.pointer != o.pointer || l.offset != o.offset {
			return false
		}
		if string(l.value) != string(o.value) {
			return false
		}
	}
	return true
}

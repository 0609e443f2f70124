package domain

import "fmt"

// RRClass represents the class of data carried by a resource record
// (RFC 1035 §3.2.4). In practice IN is the only class seen on the wire.
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCS RRClass = 2 // CS - CSNET (obsolete)
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

// IsValid returns true if the RRClass is one of the registered classes.
func (c RRClass) IsValid() bool {
	return c >= RRClassIN && c <= RRClassHS
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCS:
		return "CS"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(c))
	}
}

// QClass represents a DNS question class: the record classes plus the
// wildcard ANY, which matches any class (RFC 1035 §3.2.5).
type QClass uint16

// Question class constants; values 1-4 mirror the RRClass registry.
const (
	QClassIN  QClass = QClass(RRClassIN)
	QClassCS  QClass = QClass(RRClassCS)
	QClassCH  QClass = QClass(RRClassCH)
	QClassHS  QClass = QClass(RRClassHS)
	QClassANY QClass = 255 // Any class
)

// IsValid returns true if the QClass is one of the registered question classes.
func (c QClass) IsValid() bool {
	return RRClass(c).IsValid() || c == QClassANY
}

// String returns the textual representation of the QClass.
func (c QClass) String() string {
	if c == QClassANY {
		return "ANY"
	}
	return RRClass(c).String()
}

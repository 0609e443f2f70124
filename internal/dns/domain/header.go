package domain

import "fmt"

// PacketType distinguishes queries from responses (the QR header bit).
type PacketType uint8

// Packet type constants
const (
	PacketTypeQuery    PacketType = 0
	PacketTypeResponse PacketType = 1
)

// String returns the textual representation of the PacketType.
func (t PacketType) String() string {
	if t == PacketTypeResponse {
		return "response"
	}
	return "query"
}

// OpCode classifies the kind of query in a message. It is set by the
// originator and copied into the response. Values 3-15 are reserved.
type OpCode uint8

// Operation code constants
const (
	OpCodeStandardQuery OpCode = 0 // QUERY - standard query
	OpCodeInverseQuery  OpCode = 1 // IQUERY - inverse query
	OpCodeStatusRequest OpCode = 2 // STATUS - server status request
)

// IsValid returns true if the OpCode is not in the reserved range.
func (o OpCode) IsValid() bool {
	return o <= OpCodeStatusRequest
}

// String returns the textual representation of the OpCode.
func (o OpCode) String() string {
	switch o {
	case OpCodeStandardQuery:
		return "QUERY"
	case OpCodeInverseQuery:
		return "IQUERY"
	case OpCodeStatusRequest:
		return "STATUS"
	default:
		return fmt.Sprintf("RESERVED(%d)", uint8(o))
	}
}

// RCode represents a DNS response status code. Values 6-15 are reserved.
type RCode uint8

// Response code constants
const (
	RCodeNoError        RCode = 0 // No error condition
	RCodeFormatError    RCode = 1 // The name server was unable to interpret the query
	RCodeServerFailure  RCode = 2 // A problem with the name server
	RCodeNameError      RCode = 3 // The domain name referenced in the query does not exist
	RCodeNotImplemented RCode = 4 // The name server does not support the requested kind of query
	RCodeRefused        RCode = 5 // The name server refuses the operation for policy reasons
)

// IsValid returns true if the RCode is not in the reserved range.
func (r RCode) IsValid() bool {
	return r <= RCodeRefused
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormatError:
		return "FORMERR"
	case RCodeServerFailure:
		return "SERVFAIL"
	case RCodeNameError:
		return "NXDOMAIN"
	case RCodeNotImplemented:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("RESERVED(%d)", uint8(r))
	}
}

// Header is the fixed 12-byte message header (RFC 1035 §4.1.1). Exactly one
// header exists per message and is owned by it; the four counts are kept in
// lockstep with the section slices by the Message builder methods.
type Header struct {
	// ID is an opaque correlation token assigned by the query originator
	// and echoed back in the response.
	ID uint16

	// Type reports whether this message is a query or a response.
	Type PacketType

	// OpCode is the kind of query, copied from query into response.
	OpCode OpCode

	// AuthoritativeAnswer is valid in responses and marks the responding
	// server as an authority for the question's domain name.
	AuthoritativeAnswer bool

	// Truncated marks a message cut short by the transmission channel.
	Truncated bool

	// RecursionDesired directs the server to pursue the query recursively.
	// Set in a query and copied into the response.
	RecursionDesired bool

	// RecursionAvailable denotes recursive query support in the server.
	RecursionAvailable bool

	// RCode is the response status.
	RCode RCode

	// Section counts.
	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

// NewHeader returns a header for a freshly constructed outgoing message:
// response type, standard query opcode, no flags, no error, zero counts.
func NewHeader(id uint16) Header {
	return Header{
		ID:     id,
		Type:   PacketTypeResponse,
		OpCode: OpCodeStandardQuery,
		RCode:  RCodeNoError,
	}
}

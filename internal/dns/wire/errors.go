package wire

import "errors"

// Decode errors are sentinel values so callers can classify failures with
// errors.Is; sites that raise them wrap with fmt.Errorf("...: %w", ...) to
// add operational context. Decoding is strict: the first error encountered
// propagates to the caller and any partially built message is discarded.
var (
	// ErrShortMessage indicates a message buffer smaller than the fixed
	// 12-byte header.
	ErrShortMessage = errors.New("message must be at least 12 bytes")

	// ErrHeaderSize indicates a header slice that is not exactly 12 bytes.
	ErrHeaderSize = errors.New("header must consist of exactly 12 bytes")

	// ErrReservedOpCode indicates an operation code in the reserved
	// range 3-15.
	ErrReservedOpCode = errors.New("reserved operation code")

	// ErrReservedRCode indicates a response code in the reserved
	// range 6-15.
	ErrReservedRCode = errors.New("reserved response code")

	// ErrReservedZFlag indicates the Z header bits were not zero.
	ErrReservedZFlag = errors.New("z flag in header must be zero")

	// ErrIncompleteName indicates a name whose buffer ran out before a
	// root label or compression pointer terminated it.
	ErrIncompleteName = errors.New("name is incomplete or does not end in a terminator")

	// ErrBadLabelLength indicates a label length octet larger than the
	// bytes remaining in the buffer.
	ErrBadLabelLength = errors.New("encoded label length exceeds remaining buffer")

	// ErrBadStringLength indicates a character-string length octet larger
	// than the bytes remaining in its RDATA region.
	ErrBadStringLength = errors.New("encoded character-string length exceeds remaining data")

	// ErrMissingTypeAndClass indicates a question cut off before its
	// type and class fields.
	ErrMissingTypeAndClass = errors.New("question is missing type and class")

	// ErrMissingClass indicates a question cut off before its class field.
	ErrMissingClass = errors.New("question is missing class")

	// ErrUnregisteredType indicates a type code with no registered type.
	ErrUnregisteredType = errors.New("no type registered with code")

	// ErrUnregisteredClass indicates a class code with no registered class.
	ErrUnregisteredClass = errors.New("no class registered with code")

	// ErrTruncatedRecord indicates a resource record cut off before its
	// fixed fields or declared RDATA length.
	ErrTruncatedRecord = errors.New("resource record is truncated")

	// ErrNotImplemented indicates a record kind whose wire format is not
	// supported; it fails loudly rather than silently dropping data.
	ErrNotImplemented = errors.New("record type not implemented")

	// ErrForwardPointer indicates a compression pointer that does not
	// reference a strictly earlier offset, which could never terminate.
	ErrForwardPointer = errors.New("compression pointer must reference an earlier offset")

	// ErrPointerCycle indicates a compression pointer chain that revisits
	// an offset.
	ErrPointerCycle = errors.New("compression pointer chain contains a cycle")
)

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// recordFixedSize covers TYPE(2), CLASS(2), TTL(4) and RDLENGTH(2), which
// follow the owner name in every resource record.
const recordFixedSize = 10

// decodeRecord parses one resource record starting at offset and returns it
// with the number of bytes consumed. The RDATA region is exactly RDLENGTH
// bytes and is never read past; the payload decoder dispatches on the wire
// type code.
func decodeRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, n, err := decodeName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("decoding record name: %w", err)
	}
	cursor := offset + n

	if cursor+recordFixedSize > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: missing fixed fields", ErrTruncatedRecord)
	}

	rrtype := domain.RRType(binary.BigEndian.Uint16(data[cursor : cursor+2]))
	class := domain.RRClass(binary.BigEndian.Uint16(data[cursor+2 : cursor+4]))
	ttl := binary.BigEndian.Uint32(data[cursor+4 : cursor+8])
	rdLength := int(binary.BigEndian.Uint16(data[cursor+8 : cursor+10]))
	cursor += recordFixedSize

	if !rrtype.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: %d", ErrUnregisteredType, rrtype)
	}
	if !class.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: %d", ErrUnregisteredClass, class)
	}
	if cursor+rdLength > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: rdata length %d exceeds buffer", ErrTruncatedRecord, rdLength)
	}

	rdata, err := decodeRData(rrtype, data[cursor:cursor+rdLength])
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("decoding %s rdata: %w", rrtype, err)
	}

	rr := domain.ResourceRecord{
		Name:  name,
		Class: class,
		TTL:   ttl,
		Data:  rdata,
	}
	return rr, n + recordFixedSize + rdLength, nil
}

// encodeRecord serializes one resource record. RDLENGTH is computed from the
// serialized payload, never trusted from the input.
func encodeRecord(rr domain.ResourceRecord) ([]byte, error) {
	payload, err := encodeRData(rr.Data)
	if err != nil {
		return nil, fmt.Errorf("encoding %s rdata: %w", rr.Type(), err)
	}
	if len(payload) > 0xFFFF {
		return nil, fmt.Errorf("rdata too large: %d bytes", len(payload))
	}

	buf := encodeName(rr.Name)
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Type()))
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Class))
	buf = binary.BigEndian.AppendUint32(buf, rr.TTL)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(payload)))
	return append(buf, payload...), nil
}

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeSOAData decodes an SOA record payload: the MNAME and RNAME domain
// names followed by five 32-bit big-endian intervals.
func decodeSOAData(b []byte) (domain.RData, error) {
	mname, n, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	rname, m, err := decodeName(b, n)
	if err != nil {
		return nil, err
	}

	fields := b[n+m:]
	if len(fields) != 20 {
		return nil, fmt.Errorf("%w: SOA needs exactly 20 bytes of intervals, got %d", ErrTruncatedRecord, len(fields))
	}

	return domain.SOAData{
		MName:   mname,
		RName:   rname,
		Serial:  binary.BigEndian.Uint32(fields[0:4]),
		Refresh: binary.BigEndian.Uint32(fields[4:8]),
		Retry:   binary.BigEndian.Uint32(fields[8:12]),
		Expire:  binary.BigEndian.Uint32(fields[12:16]),
		Minimum: binary.BigEndian.Uint32(fields[16:20]),
	}, nil
}

// encodeSOAData encodes an SOA record payload.
func encodeSOAData(d domain.SOAData) ([]byte, error) {
	buf := encodeName(d.MName)
	buf = append(buf, encodeName(d.RName)...)
	buf = binary.BigEndian.AppendUint32(buf, d.Serial)
	buf = binary.BigEndian.AppendUint32(buf, d.Refresh)
	buf = binary.BigEndian.AppendUint32(buf, d.Retry)
	buf = binary.BigEndian.AppendUint32(buf, d.Expire)
	buf = binary.BigEndian.AppendUint32(buf, d.Minimum)
	return buf, nil
}

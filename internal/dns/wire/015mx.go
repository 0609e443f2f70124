package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeMXData decodes an MX record payload: a 16-bit preference followed
// by the exchange domain name.
func decodeMXData(b []byte) (domain.RData, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("%w: MX needs a 2-byte preference", ErrTruncatedRecord)
	}
	exchange, _, err := decodeName(b, 2)
	if err != nil {
		return nil, err
	}
	return domain.MXData{
		Preference: binary.BigEndian.Uint16(b[:2]),
		Exchange:   exchange,
	}, nil
}

// encodeMXData encodes an MX record payload.
func encodeMXData(d domain.MXData) ([]byte, error) {
	buf := binary.BigEndian.AppendUint16(nil, d.Preference)
	return append(buf, encodeName(d.Exchange)...), nil
}

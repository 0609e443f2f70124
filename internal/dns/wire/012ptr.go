package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodePTRData decodes a PTR record payload: one domain name.
func decodePTRData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.PTRData{Name: name}, nil
}

// encodePTRData encodes a PTR record payload.
func encodePTRData(d domain.PTRData) ([]byte, error) {
	return encodeName(d.Name), nil
}

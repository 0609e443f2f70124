package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeCNAMEData decodes a CNAME record payload: one domain name.
func decodeCNAMEData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.CNAMEData{Name: name}, nil
}

// encodeCNAMEData encodes a CNAME record payload.
func encodeCNAMEData(d domain.CNAMEData) ([]byte, error) {
	return encodeName(d.Name), nil
}

package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeNSData decodes an NS record payload: one domain name.
func decodeNSData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.NSData{Name: name}, nil
}

// encodeNSData encodes an NS record payload.
func encodeNSData(d domain.NSData) ([]byte, error) {
	return encodeName(d.Name), nil
}

package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMBData decodes an MB record payload: one domain name.
func decodeMBData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.MBData{Name: name}, nil
}

// encodeMBData encodes an MB record payload.
func encodeMBData(d domain.MBData) ([]byte, error) {
	return encodeName(d.Name), nil
}

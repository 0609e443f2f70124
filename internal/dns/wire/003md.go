package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMDData decodes an MD record payload: one domain name.
func decodeMDData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.MDData{Name: name}, nil
}

// encodeMDData encodes an MD record payload.
func encodeMDData(d domain.MDData) ([]byte, error) {
	return encodeName(d.Name), nil
}

package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMRData decodes an MR record payload: one domain name.
func decodeMRData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.MRData{Name: name}, nil
}

// encodeMRData encodes an MR record payload.
func encodeMRData(d domain.MRData) ([]byte, error) {
	return encodeName(d.Name), nil
}

package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMFData decodes an MF record payload: one domain name.
func decodeMFData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.MFData{Name: name}, nil
}

// encodeMFData encodes an MF record payload.
func encodeMFData(d domain.MFData) ([]byte, error) {
	return encodeName(d.Name), nil
}

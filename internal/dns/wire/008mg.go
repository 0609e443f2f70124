package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMGData decodes an MG record payload: one domain name.
func decodeMGData(b []byte) (domain.RData, error) {
	name, _, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	return domain.MGData{Name: name}, nil
}

// encodeMGData encodes an MG record payload.
func encodeMGData(d domain.MGData) ([]byte, error) {
	return encodeName(d.Name), nil
}

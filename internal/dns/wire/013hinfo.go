package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeHINFOData decodes an HINFO record payload: the CPU and OS
// character-strings.
func decodeHINFOData(b []byte) (domain.RData, error) {
	cpu, n, err := decodeCharacterString(b)
	if err != nil {
		return nil, err
	}
	os, _, err := decodeCharacterString(b[n:])
	if err != nil {
		return nil, err
	}
	return domain.HINFOData{CPU: cpu, OS: os}, nil
}

// encodeHINFOData encodes an HINFO record payload.
func encodeHINFOData(d domain.HINFOData) ([]byte, error) {
	buf := encodeCharacterString(d.CPU)
	return append(buf, encodeCharacterString(d.OS)...), nil
}

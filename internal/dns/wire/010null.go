package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeNULLData decodes a NULL record payload: the raw RDATA bytes.
func decodeNULLData(b []byte) (domain.RData, error) {
	data := make([]byte, len(b))
	copy(data, b)
	return domain.NULLData{Data: data}, nil
}

// encodeNULLData encodes a NULL record payload.
func encodeNULLData(d domain.NULLData) ([]byte, error) {
	return d.Data, nil
}

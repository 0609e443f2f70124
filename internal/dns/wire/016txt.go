package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeTXTData decodes a TXT record payload: one or more character-strings
// filling the RDATA region exactly.
func decodeTXTData(b []byte) (domain.RData, error) {
	var strings []domain.CharacterString
	for len(b) > 0 {
		s, n, err := decodeCharacterString(b)
		if err != nil {
			return nil, err
		}
		strings = append(strings, s)
		b = b[n:]
	}
	return domain.TXTData{Strings: strings}, nil
}

// encodeTXTData encodes a TXT record payload.
func encodeTXTData(d domain.TXTData) ([]byte, error) {
	var buf []byte
	for _, s := range d.Strings {
		buf = append(buf, encodeCharacterString(s)...)
	}
	return buf, nil
}

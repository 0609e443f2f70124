package wire

import "github.com/dnswire/dnswire/internal/dns/domain"

// decodeMINFOData decodes an MINFO record payload: the responsible mailbox
// and error mailbox domain names.
func decodeMINFOData(b []byte) (domain.RData, error) {
	rmailbox, n, err := decodeRDataName(b)
	if err != nil {
		return nil, err
	}
	emailbox, _, err := decodeName(b, n)
	if err != nil {
		return nil, err
	}
	return domain.MINFOData{RMailbox: rmailbox, EMailbox: emailbox}, nil
}

// encodeMINFOData encodes an MINFO record payload.
func encodeMINFOData(d domain.MINFOData) ([]byte, error) {
	buf := encodeName(d.RMailbox)
	return append(buf, encodeName(d.EMailbox)...), nil
}

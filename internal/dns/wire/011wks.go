package wire

import (
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// The WKS service bitmap format is not supported. The type stays in the
// registry so a WKS record on the wire fails loudly instead of being
// misclassified or silently dropped.

// decodeWKSData always fails: WKS wire decoding is not implemented.
func decodeWKSData([]byte) (domain.RData, error) {
	return nil, fmt.Errorf("%w: WKS decoding", ErrNotImplemented)
}

// encodeWKSData always fails: WKS wire encoding is not implemented.
func encodeWKSData(domain.WKSData) ([]byte, error) {
	return nil, fmt.Errorf("%w: WKS encoding", ErrNotImplemented)
}

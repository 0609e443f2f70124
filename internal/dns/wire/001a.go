package wire

import (
	"fmt"
	"net/netip"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeAData decodes an A record payload: a 4-byte IPv4 address.
func decodeAData(b []byte) (domain.RData, error) {
	if len(b) != 4 {
		return nil, fmt.Errorf("%w: A rdata must be 4 bytes, got %d", ErrTruncatedRecord, len(b))
	}
	addr, _ := netip.AddrFromSlice(b)
	return domain.AData{Addr: addr}, nil
}

// encodeAData encodes an A record payload.
func encodeAData(d domain.AData) ([]byte, error) {
	if !d.Addr.Is4() {
		return nil, fmt.Errorf("A record address must be IPv4: %s", d.Addr)
	}
	v4 := d.Addr.As4()
	return v4[:], nil
}

package wire

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

func TestDecodeRecord(t *testing.T) {
	data := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0, 1, // TYPE A
		0, 1, // CLASS IN
		0, 0, 14, 16, // TTL 3600
		0, 4, // RDLENGTH
		93, 184, 216, 34,
	}

	rr, n, err := decodeRecord(data, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(data) {
		t.Errorf("consumed = %d, want %d", n, len(data))
	}
	if rr.Name.String() != "example.com" {
		t.Errorf("name = %q, want %q", rr.Name.String(), "example.com")
	}
	if rr.Class != domain.RRClassIN {
		t.Errorf("class = %v, want IN", rr.Class)
	}
	if rr.TTL != 3600 {
		t.Errorf("ttl = %d, want 3600", rr.TTL)
	}
	a, ok := rr.Data.(domain.AData)
	if !ok {
		t.Fatalf("data = %T, want AData", rr.Data)
	}
	if a.Addr != netip.AddrFrom4([4]byte{93, 184, 216, 34}) {
		t.Errorf("addr = %v, want 93.184.216.34", a.Addr)
	}
}

func TestDecodeRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "missing fixed fields",
			data: []byte{3, 'w', 'w', 'w', 0, 0, 1},
			want: ErrTruncatedRecord,
		},
		{
			name: "unregistered type",
			data: []byte{3, 'w', 'w', 'w', 0, 0, 99, 0, 1, 0, 0, 0, 0, 0, 0},
			want: ErrUnregisteredType,
		},
		{
			name: "unregistered class",
			data: []byte{3, 'w', 'w', 'w', 0, 0, 1, 0, 9, 0, 0, 0, 0, 0, 0},
			want: ErrUnregisteredClass,
		},
		{
			name: "rdata past buffer",
			data: []byte{3, 'w', 'w', 'w', 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 4, 1, 2},
			want: ErrTruncatedRecord,
		},
		{
			name: "rdata wrong size for type",
			data: []byte{3, 'w', 'w', 'w', 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 2, 1, 2},
			want: ErrTruncatedRecord,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := decodeRecord(tc.data, 0)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecodeRecord_WKSNotImplemented(t *testing.T) {
	data := []byte{
		3, 'w', 'w', 'w', 0,
		0, 11, // TYPE WKS
		0, 1,
		0, 0, 0, 0,
		0, 5,
		10, 0, 0, 1, 6,
	}
	_, _, err := decodeRecord(data, 0)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}

func TestEncodeRecord_ComputesRDLength(t *testing.T) {
	rr := domain.ResourceRecord{
		Name:  wireName(t, "example.com"),
		Class: domain.RRClassIN,
		TTL:   300,
		Data: domain.MXData{
			Preference: 10,
			Exchange:   wireName(t, "mail.example.com"),
		},
	}

	buf, err := encodeRecord(rr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Owner name is 13 bytes; RDLENGTH sits at 21-22 and must equal the
	// preference plus the encoded exchange name.
	nameLen := 13
	rdLength := int(buf[nameLen+8])<<8 | int(buf[nameLen+9])
	wantRData := 2 + len(encodeName(rr.Data.(domain.MXData).Exchange))
	if rdLength != wantRData {
		t.Errorf("rdlength = %d, want %d", rdLength, wantRData)
	}
	if len(buf) != nameLen+recordFixedSize+wantRData {
		t.Errorf("total size = %d, want %d", len(buf), nameLen+recordFixedSize+wantRData)
	}
}

func TestEncodeRecord_WKSNotImplemented(t *testing.T) {
	rr := domain.ResourceRecord{
		Name:  wireName(t, "www"),
		Class: domain.RRClassIN,
		Data: domain.WKSData{
			Addr:     netip.AddrFrom4([4]byte{10, 0, 0, 1}),
			Protocol: 6,
		},
	}
	_, err := encodeRecord(rr)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	records := []domain.ResourceRecord{
		{
			Name:  wireName(t, "example.com"),
			Class: domain.RRClassIN,
			TTL:   3600,
			Data:  domain.AData{Addr: netip.AddrFrom4([4]byte{192, 0, 2, 1})},
		},
		{
			Name:  wireName(t, "example.com"),
			Class: domain.RRClassIN,
			TTL:   86400,
			Data: domain.SOAData{
				MName:   wireName(t, "ns1.example.com"),
				RName:   wireName(t, "admin.example.com"),
				Serial:  2026082601,
				Refresh: 7200,
				Retry:   3600,
				Expire:  1209600,
				Minimum: 300,
			},
		},
		{
			Name:  wireName(t, "example.com"),
			Class: domain.RRClassIN,
			TTL:   600,
			Data:  domain.NULLData{Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		},
	}

	for _, rr := range records {
		buf, err := encodeRecord(rr)
		if err != nil {
			t.Fatalf("encode %s: %v", rr.Type(), err)
		}
		got, n, err := decodeRecord(buf, 0)
		if err != nil {
			t.Fatalf("decode %s: %v", rr.Type(), err)
		}
		if n != len(buf) {
			t.Errorf("%s: consumed %d of %d bytes", rr.Type(), n, len(buf))
		}
		if got.Type() != rr.Type() || got.TTL != rr.TTL || !got.Name.Equal(rr.Name) {
			t.Errorf("%s: round trip = %+v, want %+v", rr.Type(), got, rr)
		}
	}
}

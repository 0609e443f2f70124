package wire

import (
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// decodeRData decodes a record payload based on its wire type code. The
// input slice is exactly the RDLENGTH-delimited region.
func decodeRData(rrtype domain.RRType, b []byte) (domain.RData, error) {
	switch rrtype {
	case domain.RRTypeA: // 1
		return decodeAData(b)
	case domain.RRTypeNS: // 2
		return decodeNSData(b)
	case domain.RRTypeMD: // 3
		return decodeMDData(b)
	case domain.RRTypeMF: // 4
		return decodeMFData(b)
	case domain.RRTypeCNAME: // 5
		return decodeCNAMEData(b)
	case domain.RRTypeSOA: // 6
		return decodeSOAData(b)
	case domain.RRTypeMB: // 7
		return decodeMBData(b)
	case domain.RRTypeMG: // 8
		return decodeMGData(b)
	case domain.RRTypeMR: // 9
		return decodeMRData(b)
	case domain.RRTypeNULL: // 10
		return decodeNULLData(b)
	case domain.RRTypeWKS: // 11
		return decodeWKSData(b)
	case domain.RRTypePTR: // 12
		return decodePTRData(b)
	case domain.RRTypeHINFO: // 13
		return decodeHINFOData(b)
	case domain.RRTypeMINFO: // 14
		return decodeMINFOData(b)
	case domain.RRTypeMX: // 15
		return decodeMXData(b)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(b)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnregisteredType, rrtype)
	}
}

// encodeRData encodes a record payload based on its active variant.
func encodeRData(data domain.RData) ([]byte, error) {
	switch v := data.(type) {
	case domain.AData:
		return encodeAData(v)
	case domain.NSData:
		return encodeNSData(v)
	case domain.MDData:
		return encodeMDData(v)
	case domain.MFData:
		return encodeMFData(v)
	case domain.CNAMEData:
		return encodeCNAMEData(v)
	case domain.SOAData:
		return encodeSOAData(v)
	case domain.MBData:
		return encodeMBData(v)
	case domain.MGData:
		return encodeMGData(v)
	case domain.MRData:
		return encodeMRData(v)
	case domain.NULLData:
		return encodeNULLData(v)
	case domain.WKSData:
		return encodeWKSData(v)
	case domain.PTRData:
		return encodePTRData(v)
	case domain.HINFOData:
		return encodeHINFOData(v)
	case domain.MINFOData:
		return encodeMINFOData(v)
	case domain.MXData:
		return encodeMXData(v)
	case domain.TXTData:
		return encodeTXTData(v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnregisteredType, data)
	}
}

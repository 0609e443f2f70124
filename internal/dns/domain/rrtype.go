package domain

import "fmt"

// RRType represents a DNS resource record type code as registered by
// RFC 1035 §3.2.2.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1  // A - Host address
	RRTypeNS    RRType = 2  // NS - Authoritative name server
	RRTypeMD    RRType = 3  // MD - Mail destination (obsolete, use MX)
	RRTypeMF    RRType = 4  // MF - Mail forwarder (obsolete, use MX)
	RRTypeCNAME RRType = 5  // CNAME - Canonical name for an alias
	RRTypeSOA   RRType = 6  // SOA - Start of a zone of authority
	RRTypeMB    RRType = 7  // MB - Mailbox domain name (experimental)
	RRTypeMG    RRType = 8  // MG - Mail group member (experimental)
	RRTypeMR    RRType = 9  // MR - Mail rename domain name (experimental)
	RRTypeNULL  RRType = 10 // NULL - Null RR (experimental)
	RRTypeWKS   RRType = 11 // WKS - Well known service description
	RRTypePTR   RRType = 12 // PTR - Domain name pointer
	RRTypeHINFO RRType = 13 // HINFO - Host information
	RRTypeMINFO RRType = 14 // MINFO - Mailbox or mail list information
	RRTypeMX    RRType = 15 // MX - Mail exchange
	RRTypeTXT   RRType = 16 // TXT - Text strings
)

// IsValid returns true if the RRType is one of the registered types.
func (t RRType) IsValid() bool {
	return t >= RRTypeA && t <= RRTypeTXT
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeMD:
		return "MD"
	case RRTypeMF:
		return "MF"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypeMB:
		return "MB"
	case RRTypeMG:
		return "MG"
	case RRTypeMR:
		return "MR"
	case RRTypeNULL:
		return "NULL"
	case RRTypeWKS:
		return "WKS"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMINFO:
		return "MINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
	}
}

// RRTypeFromString converts a record type string to its corresponding RRType value.
func RRTypeFromString(s string) RRType {
	switch s {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "MD":
		return RRTypeMD
	case "MF":
		return RRTypeMF
	case "CNAME":
		return RRTypeCNAME
	case "SOA":
		return RRTypeSOA
	case "MB":
		return RRTypeMB
	case "MG":
		return RRTypeMG
	case "MR":
		return RRTypeMR
	case "NULL":
		return RRTypeNULL
	case "WKS":
		return RRTypeWKS
	case "PTR":
		return RRTypePTR
	case "HINFO":
		return RRTypeHINFO
	case "MINFO":
		return RRTypeMINFO
	case "MX":
		return RRTypeMX
	case "TXT":
		return RRTypeTXT
	default:
		return 0 // invalid/unknown
	}
}

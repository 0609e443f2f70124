package domain

import "net/netip"

// RData is the payload of a resource record: a closed union with one member
// per registered record type. The wire TYPE code is derived from the active
// variant via Type and never stored separately, so a record's type and its
// data cannot disagree.
type RData interface {
	// Type returns the wire type code implied by the variant.
	Type() RRType

	// rdata closes the union to this package.
	rdata()
}

// AData is a host address (A). Hosts with multiple addresses carry
// multiple A records.
type AData struct {
	Addr netip.Addr
}

// NSData names a host that is authoritative for the owner's class and domain (NS).
type NSData struct {
	Name Name
}

// MDData names a host with a mail agent that delivers mail for the owner
// domain (MD, obsolete - use MX).
type MDData struct {
	Name Name
}

// MFData names a host with a mail agent that forwards mail for the owner
// domain (MF, obsolete - use MX).
type MFData struct {
	Name Name
}

// CNAMEData is the canonical name for an alias (CNAME); the owner name is
// the alias.
type CNAMEData struct {
	Name Name
}

// SOAData marks the start of a zone of authority (SOA). All intervals are
// in seconds.
type SOAData struct {
	// MName is the primary source of data for the zone.
	MName Name

	// RName is the mailbox of the person responsible for the zone.
	RName Name

	// Serial is the zone version, compared with sequence space arithmetic.
	Serial uint32

	// Refresh is the interval before the zone should be refreshed.
	Refresh uint32

	// Retry is the interval before a failed refresh should be retried.
	Retry uint32

	// Expire bounds how long the zone stays authoritative without refresh.
	Expire uint32

	// Minimum is the floor on TTLs exported with any RR from the zone.
	Minimum uint32
}

// MBData names a host that has the specified mailbox (MB, experimental).
type MBData struct {
	Name Name
}

// MGData names a mailbox that is a member of the owner mail group (MG, experimental).
type MGData struct {
	Name Name
}

// MRData names the proper rename of the owner mailbox (MR, experimental).
type MRData struct {
	Name Name
}

// NULLData is an opaque blob of up to 65535 octets (NULL, experimental).
type NULLData struct {
	Data []byte
}

// WKSData describes well known services supported by a protocol at an
// address (WKS). Wire support for the service bitmap is not implemented;
// encode and decode both fail rather than silently dropping data.
type WKSData struct {
	Addr     netip.Addr
	Protocol uint8
	Bitmap   []byte
}

// PTRData points to a location in the domain name space (PTR). Unlike
// CNAME, no alias processing is implied.
type PTRData struct {
	Name Name
}

// HINFOData carries general host information as two character-strings (HINFO).
type HINFOData struct {
	CPU CharacterString
	OS  CharacterString
}

// MINFOData carries mailbox or mailing-list information (MINFO).
type MINFOData struct {
	// RMailbox is responsible for the mailing list or mailbox.
	RMailbox Name

	// EMailbox receives error messages related to the list or mailbox.
	EMailbox Name
}

// MXData names a host willing to act as a mail exchange for the owner (MX).
type MXData struct {
	// Preference among MX records at the same owner; lower is preferred.
	Preference uint16
	Exchange   Name
}

// TXTData holds one or more descriptive character-strings (TXT).
type TXTData struct {
	Strings []CharacterString
}

func (AData) Type() RRType     { return RRTypeA }
func (NSData) Type() RRType    { return RRTypeNS }
func (MDData) Type() RRType    { return RRTypeMD }
func (MFData) Type() RRType    { return RRTypeMF }
func (CNAMEData) Type() RRType { return RRTypeCNAME }
func (SOAData) Type() RRType   { return RRTypeSOA }
func (MBData) Type() RRType    { return RRTypeMB }
func (MGData) Type() RRType    { return RRTypeMG }
func (MRData) Type() RRType    { return RRTypeMR }
func (NULLData) Type() RRType  { return RRTypeNULL }
func (WKSData) Type() RRType   { return RRTypeWKS }
func (PTRData) Type() RRType   { return RRTypePTR }
func (HINFOData) Type() RRType { return RRTypeHINFO }
func (MINFOData) Type() RRType { return RRTypeMINFO }
func (MXData) Type() RRType    { return RRTypeMX }
func (TXTData) Type() RRType   { return RRTypeTXT }

func (AData) rdata()     {}
func (NSData) rdata()    {}
func (MDData) rdata()    {}
func (MFData) rdata()    {}
func (CNAMEData) rdata() {}
func (SOAData) rdata()   {}
func (MBData) rdata()    {}
func (MGData) rdata()    {}
func (MRData) rdata()    {}
func (NULLData) rdata()  {}
func (WKSData) rdata()   {}
func (PTRData) rdata()   {}
func (HINFOData) rdata() {}
func (MINFOData) rdata() {}
func (MXData) rdata()    {}
func (TXTData) rdata()   {}

package domain

import "fmt"

// ResourceRecord is one entry of the answer, authority, or additional
// section (RFC 1035 §4.1.3). The wire TYPE field is derived from the Data
// variant and never stored on the record itself.
type ResourceRecord struct {
	// Name is the domain name to which this record pertains.
	Name Name

	// Class specifies the class of the data.
	Class RRClass

	// TTL is the interval in seconds the record may be cached. Zero means
	// the record is only valid for the transaction in progress and must
	// not be cached.
	TTL uint32

	// Data is the record payload; its variant determines the record type.
	Data RData
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
func NewResourceRecord(name Name, class RRClass, ttl uint32, data RData) (ResourceRecord, error) {
	rr := ResourceRecord{Name: name, Class: class, TTL: ttl, Data: data}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Type returns the record type implied by the RDATA variant.
func (rr ResourceRecord) Type() RRType {
	if rr.Data == nil {
		return 0
	}
	return rr.Data.Type()
}

// Validate checks whether the ResourceRecord fields are structurally valid.
func (rr ResourceRecord) Validate() error {
	if len(rr.Name.Labels) == 0 {
		return fmt.Errorf("record name must not be empty")
	}
	if !rr.Class.IsValid() {
		return fmt.Errorf("unregistered record class: %d", rr.Class)
	}
	if rr.Data == nil {
		return fmt.Errorf("record data must be set")
	}
	return nil
}

package domain

import "fmt"

// QType represents a DNS question type. It is a superset of RRType: every
// record type is a valid question type, plus four meta-types that can match
// more than one kind of record (RFC 1035 §3.2.3).
type QType uint16

// Question meta-type constants; values 1-16 mirror the RRType registry.
const (
	QTypeA     QType = QType(RRTypeA)
	QTypeNS    QType = QType(RRTypeNS)
	QTypeMD    QType = QType(RRTypeMD)
	QTypeMF    QType = QType(RRTypeMF)
	QTypeCNAME QType = QType(RRTypeCNAME)
	QTypeSOA   QType = QType(RRTypeSOA)
	QTypeMB    QType = QType(RRTypeMB)
	QTypeMG    QType = QType(RRTypeMG)
	QTypeMR    QType = QType(RRTypeMR)
	QTypeNULL  QType = QType(RRTypeNULL)
	QTypeWKS   QType = QType(RRTypeWKS)
	QTypePTR   QType = QType(RRTypePTR)
	QTypeHINFO QType = QType(RRTypeHINFO)
	QTypeMINFO QType = QType(RRTypeMINFO)
	QTypeMX    QType = QType(RRTypeMX)
	QTypeTXT   QType = QType(RRTypeTXT)
	QTypeAXFR  QType = 252 // Request for a transfer of an entire zone
	QTypeMAILB QType = 253 // Request for mailbox-related records (MB, MG or MR)
	QTypeMAILA QType = 254 // Request for mail agent RRs (obsolete, see MX)
	QTypeALL   QType = 255 // Request for all records
)

// IsValid returns true if the QType is one of the registered question types.
func (t QType) IsValid() bool {
	if RRType(t).IsValid() {
		return true
	}
	switch t {
	case QTypeAXFR, QTypeMAILB, QTypeMAILA, QTypeALL:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the QType.
func (t QType) String() string {
	switch t {
	case QTypeAXFR:
		return "AXFR"
	case QTypeMAILB:
		return "MAILB"
	case QTypeMAILA:
		return "MAILA"
	case QTypeALL:
		return "ALL"
	default:
		if RRType(t).IsValid() {
			return RRType(t).String()
		}
		return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
	}
}

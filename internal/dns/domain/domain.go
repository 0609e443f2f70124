// Package domain defines the value types that make up a DNS message as
// described by RFC 1035 §4: the header, questions, resource records, domain
// names, and the per-type RDATA union. Types here carry no wire-format
// logic; encoding and decoding live in internal/dns/wire.
package domain

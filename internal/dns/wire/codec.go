// Package wire encodes and decodes DNS messages in the RFC 1035 §4 wire
// format: the fixed 12-byte header, the question section, and the answer,
// authority, and additional resource record sections, including compressed
// domain names. The codec is purely functional over an immutable input
// buffer, performs no I/O, and is safe for concurrent use on independent
// buffers.
package wire

import (
	"github.com/dnswire/dnswire/internal/dns/common/log"
	"github.com/dnswire/dnswire/internal/dns/domain"
)

// Codec wraps the package-level Decode and Encode with structured logging.
type Codec struct {
	logger log.Logger
}

// NewCodec creates a Codec using the provided logger.
func NewCodec(logger log.Logger) *Codec {
	return &Codec{logger: logger}
}

// Decode parses a wire-format message, logging the outcome at debug level.
func (c *Codec) Decode(data []byte) (domain.Message, error) {
	msg, err := Decode(data)
	if err != nil {
		c.logger.Debug(map[string]any{
			"size":  len(data),
			"error": err.Error(),
		}, "Failed to decode DNS message")
		return domain.Message{}, err
	}
	c.logger.Debug(map[string]any{
		"id":         msg.Header.ID,
		"type":       msg.Header.Type.String(),
		"questions":  len(msg.Questions),
		"answers":    len(msg.Answers),
		"authority":  len(msg.Authorities),
		"additional": len(msg.Additionals),
		"size":       len(data),
	}, "Decoded DNS message")
	return msg, nil
}

// Encode serializes a message, logging the outcome at debug level.
func (c *Codec) Encode(msg domain.Message) ([]byte, error) {
	data, err := Encode(msg)
	if err != nil {
		c.logger.Debug(map[string]any{
			"id":    msg.Header.ID,
			"error": err.Error(),
		}, "Failed to encode DNS message")
		return nil, err
	}
	c.logger.Debug(map[string]any{
		"id":   msg.Header.ID,
		"size": len(data),
	}, "Encoded DNS message")
	return data, nil
}

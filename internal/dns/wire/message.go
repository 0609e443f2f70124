package wire

import (
	"fmt"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// Decode parses a complete DNS message from data. The header counts drive
// how many questions and records are read, in the fixed question, answer,
// authority, additional order. Owner names are expanded against the entire
// original buffer immediately after decoding, because compression pointer
// offsets are absolute. Decoding is strict: the first error aborts and no
// partial message is returned.
func Decode(data []byte) (domain.Message, error) {
	if len(data) < headerSize {
		return domain.Message{}, fmt.Errorf("%w: got %d", ErrShortMessage, len(data))
	}

	header, err := decodeHeader(data[:headerSize])
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{Header: header}
	cursor := headerSize

	for i := uint16(0); i < header.QuestionCount; i++ {
		q, n, err := decodeQuestion(data, cursor)
		if err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		if err := expandName(&q.Name, data, cursor); err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		msg.Questions = append(msg.Questions, q)
		cursor += n
	}

	sections := []struct {
		name  string
		count uint16
		dst   *[]domain.ResourceRecord
	}{
		{"answer", header.AnswerCount, &msg.Answers},
		{"authority", header.AuthorityCount, &msg.Authorities},
		{"additional", header.AdditionalCount, &msg.Additionals},
	}
	for _, section := range sections {
		for i := uint16(0); i < section.count; i++ {
			rr, n, err := decodeRecord(data, cursor)
			if err != nil {
				return domain.Message{}, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
			if err := expandName(&rr.Name, data, cursor); err != nil {
				return domain.Message{}, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
			*section.dst = append(*section.dst, rr)
			cursor += n
		}
	}

	return msg, nil
}

// Encode serializes a message: header bytes, then each question, answer,
// authority, and additional record in that fixed order. Every item is
// freshly serialized; compression is interpreted on decode but never
// synthesized here.
func Encode(msg domain.Message) ([]byte, error) {
	header := encodeHeader(msg.Header)
	buf := header[:]

	for _, q := range msg.Questions {
		buf = append(buf, encodeQuestion(q)...)
	}

	for _, section := range [][]domain.ResourceRecord{msg.Answers, msg.Authorities, msg.Additionals} {
		for _, rr := range section {
			encoded, err := encodeRecord(rr)
			if err != nil {
				return nil, err
			}
			buf = append(buf, encoded...)
		}
	}

	return buf, nil
}

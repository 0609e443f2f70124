package domain

// Message is a complete DNS message: one header followed by the question,
// answer, authority, and additional sections in that order (RFC 1035 §4.1).
// The header counts always equal the lengths of the matching slices; the
// builder methods below are the only path that mutates both together.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}

// NewMessage creates an empty message with the given correlation id.
func NewMessage(id uint16) *Message {
	return &Message{Header: NewHeader(id)}
}

// Query marks the message as a query.
func (m *Message) Query() {
	m.Header.Type = PacketTypeQuery
}

// Respond marks the message as a response.
func (m *Message) Respond() {
	m.Header.Type = PacketTypeResponse
}

// Ask appends a question for name to the question section. The name is
// split around "." and stored as a sequence of labels.
func (m *Message) Ask(name string, t QType, c QClass) error {
	parsed, err := ParseName(name)
	if err != nil {
		return err
	}
	q, err := NewQuestion(parsed, t, c)
	if err != nil {
		return err
	}
	m.Questions = append(m.Questions, q)
	m.Header.QuestionCount++
	return nil
}

// Answer appends a resource record to the answer section.
func (m *Message) Answer(rr ResourceRecord) {
	m.Answers = append(m.Answers, rr)
	m.Header.AnswerCount++
}

// Authorize appends a resource record to the authority section.
func (m *Message) Authorize(rr ResourceRecord) {
	m.Authorities = append(m.Authorities, rr)
	m.Header.AuthorityCount++
}

// Add appends a resource record to the additional section.
func (m *Message) Add(rr ResourceRecord) {
	m.Additionals = append(m.Additionals, rr)
	m.Header.AdditionalCount++
}

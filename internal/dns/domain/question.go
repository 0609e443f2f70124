package domain

import "fmt"

// Question is one entry of the question section: the parameters that define
// what is being asked (RFC 1035 §4.1.2).
type Question struct {
	// Name is the domain name being queried. No padding is used; the field
	// may be an odd number of octets on the wire.
	Name Name

	// Type includes all codes valid for a record TYPE field together with
	// the more general meta-types that match more than one kind of RR.
	Type QType

	// Class is the class of the query.
	Class QClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name Name, t QType, c QClass) (Question, error) {
	q := Question{Name: name, Type: t, Class: c}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally valid.
func (q Question) Validate() error {
	if len(q.Name.Labels) == 0 {
		return fmt.Errorf("question name must not be empty")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("unregistered question type: %d", q.Type)
	}
	if !q.Class.IsValid() {
		return fmt.Errorf("unregistered question class: %d", q.Class)
	}
	return nil
}

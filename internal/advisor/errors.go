package advisor

import "fmt"

// NumberKind identifies the parse a field was expected to satisfy.
type NumberKind int

const (
	Integer NumberKind = iota
	Real
	CardRank
)

// String returns the string representation of a number kind
func (k NumberKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case CardRank:
		return "card rank"
	default:
		return "?"
	}
}

// MalformedInputError reports a raw field that could not be parsed
// into its required type.
type MalformedInputError struct {
	Field string
	Kind  NumberKind
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("field %q is not a valid %s: %v", e.Field, e.Kind, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// InvalidGameStateError reports parsed values that violate a domain
// invariant. Kept distinct from MalformedInputError so callers can
// surface a more specific message.
type InvalidGameStateError struct {
	Reason string
}

func (e *InvalidGameStateError) Error() string {
	return fmt.Sprintf("invalid game state: %s", e.Reason)
}

package artwork

import "errors"

// Message is the only text an import failure ever shows to the user.
const Message = "Invalid JSON format"

var (
	// ErrMalformedJSON indicates input that does not parse as JSON.
	ErrMalformedJSON = errors.New("artwork: malformed json")

	// ErrInvalidSchema indicates JSON that parses but is not an artwork
	// document, or carries a pixel outside the grid.
	ErrInvalidSchema = errors.New("artwork: invalid schema")
)

// ImportError reports a rejected import. Its text is always Message; the
// failure kind is available through errors.Is and Detail is meant for logs.
type ImportError struct {
	Kind   error
	Detail string
}

func (e *ImportError) Error() string {
	return Message
}

func (e *ImportError) Unwrap() error {
	return e.Kind
}

func schemaError(detail string) error {
	return &ImportError{Kind: ErrInvalidSchema, Detail: detail}
}

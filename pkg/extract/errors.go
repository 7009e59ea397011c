package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJSONFound means the text holds no {...} pair at all.
	ErrNoJSONFound = errors.New("extract: no JSON object found")
	// ErrMalformed is matched by every *MalformedError.
	ErrMalformed = errors.New("extract: malformed JSON payload")
)

// MalformedError keeps the raw model text that failed to parse or validate.
type MalformedError struct {
	Raw string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("extract: malformed JSON payload: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Is makes every MalformedError match ErrMalformed.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

package flagtory

import "fmt"

// ErrorCode identifies the class of a fatal parse error.
type ErrorCode int

const (
	ErrInvalidValue ErrorCode = iota + 1
	ErrNotBoolean
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrInvalidValue:
		return "invalid value"
	case ErrNotBoolean:
		return "not a boolean flag"
	default:
		return "unknown error"
	}
}

// ValueError is returned when the token following a flag does not convert to the flag's kind.
type ValueError struct {
	// Flag is the canonical name of the matched flag.
	Flag string
	// Kind is the kind the text failed to convert to.
	Kind Kind
	// Text is the offending value token.
	Text string
	// Err is the underlying conversion error.
	Err error
}

func (e *ValueError) Code() ErrorCode { return ErrInvalidValue }

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q for flag %s: %v", e.Kind, e.Text, formatFlagName(e.Flag), e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// ToggleError is returned when a non-boolean flag appears without a value, either as the last
// argument or directly before another flag.
type ToggleError struct {
	// Flag is the canonical name of the matched flag.
	Flag string
	// Kind is the flag's non-boolean kind.
	Kind Kind
}

func (e *ToggleError) Code() ErrorCode { return ErrNotBoolean }

func (e *ToggleError) Error() string {
	return fmt.Sprintf("flag %s needs a %s value and cannot be toggled", formatFlagName(e.Flag), e.Kind)
}

// Unmatched describes a flag-shaped argument that matched no registered flag.
type Unmatched struct {
	// Token is the argument as given, e.g. "--alow-net".
	Token string
	// Name is the candidate name derived from Token.
	Name string
	// Suggestions holds up to three registered names similar to Name.
	Suggestions []string
}

package wire

import "fmt"

// The error kinds surfaced by the typed message layer (spec 4.2). They
// live in wire, not message, because tag value parsers here (color,
// badges, emotes) need to produce CannotParseTagError themselves.

// ExpectedCommandError is returned when a from_raw constructor is handed
// a message whose Command does not match the variant it was asked for.
type ExpectedCommandError struct {
	Want, Got string
}

func (e *ExpectedCommandError) Error() string {
	return fmt.Sprintf("wire: expected command %q, got %q", e.Want, e.Got)
}

// ExpectedArgError is returned when a required positional argument is
// missing.
type ExpectedArgError struct {
	Index int
}

func (e *ExpectedArgError) Error() string {
	return fmt.Sprintf("wire: expected argument at index %d", e.Index)
}

// ExpectedTagError is returned when a required tag is absent.
type ExpectedTagError struct {
	Name string
}

func (e *ExpectedTagError) Error() string {
	return fmt.Sprintf("wire: expected tag %q", e.Name)
}

// CannotParseTagError is returned when a tag is present but its value
// does not parse into the expected typed shape.
type CannotParseTagError struct {
	Tag   string
	Value string
	Inner error
}

func (e *CannotParseTagError) Error() string {
	return fmt.Sprintf("wire: cannot parse tag %q (value %q): %s", e.Tag, e.Value, e.Inner)
}

func (e *CannotParseTagError) Unwrap() error { return e.Inner }

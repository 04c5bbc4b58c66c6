package format

import "fmt"

// UnknownFieldError is returned by Compile when a template references a
// field key outside the closed set. Key is the offending key without
// its leading '%'.
type UnknownFieldError struct {
	Key string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("bad format key: %s", e.Key)
}

// MissingFieldError is returned by Render when the metadata record has
// no value for a referenced field. Field carries the display name shown
// to the user.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required tag: %s", e.Field)
}

package construct

import (
	"errors"
	"fmt"
)

// FieldError reports a stream too short or a length mismatch on read/write,
// or a negative length.
type FieldError struct {
	msg string
	err error
}

func newFieldError(msg string, err error) *FieldError { return &FieldError{msg: msg, err: err} }

func (e *FieldError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("construct: field: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("construct: field: %s", e.msg)
}

func (e *FieldError) Unwrap() error { return e.err }

// SizeofError wraps any error raised while computing a construct's size.
type SizeofError struct {
	err error
}

func newSizeofError(err error) *SizeofError { return &SizeofError{err: err} }

func (e *SizeofError) Error() string { return fmt.Sprintf("construct: sizeof: %v", e.err) }

func (e *SizeofError) Unwrap() error { return e.err }

// ValueError reports invalid construction arguments: a reserved name or a
// bad endianness token.
type ValueError struct {
	msg string
}

func newValueError(msg string) *ValueError { return &ValueError{msg: msg} }

func (e *ValueError) Error() string { return fmt.Sprintf("construct: value: %s", e.msg) }

// BitIntegerError reports a negative value given to an unsigned BitInteger.
type BitIntegerError struct {
	msg string
}

func newBitIntegerError(msg string) *BitIntegerError { return &BitIntegerError{msg: msg} }

func (e *BitIntegerError) Error() string { return fmt.Sprintf("construct: bitinteger: %s", e.msg) }

// MappingError reports a value with no entry in a Mapping adapter's table
// and no default.
type MappingError struct {
	msg string
}

func newMappingError(msg string) *MappingError { return &MappingError{msg: msg} }

func (e *MappingError) Error() string { return fmt.Sprintf("construct: mapping: %s", e.msg) }

// ConstError reports a parsed value that doesn't match the expected magic,
// or a built value that is neither nil nor equal to it.
type ConstError struct {
	msg string
}

func newConstError(msg string) *ConstError { return &ConstError{msg: msg} }

func (e *ConstError) Error() string { return fmt.Sprintf("construct: const: %s", e.msg) }

// PaddingError reports a strict-padding mismatch on parse.
type PaddingError struct {
	msg string
}

func newPaddingError(msg string) *PaddingError { return &PaddingError{msg: msg} }

func (e *PaddingError) Error() string { return fmt.Sprintf("construct: padding: %s", e.msg) }

// ValidationError reports an OneOf/Validator rejection.
type ValidationError struct {
	msg string
}

func newValidationError(msg string) *ValidationError { return &ValidationError{msg: msg} }

func (e *ValidationError) Error() string { return fmt.Sprintf("construct: validation: %s", e.msg) }

// wrapSizeof wraps err as a SizeofError unless it already is one, or nil.
func wrapSizeof(err error) error {
	if err == nil {
		return nil
	}
	var se *SizeofError
	if errors.As(err, &se) {
		return err
	}
	return newSizeofError(err)
}

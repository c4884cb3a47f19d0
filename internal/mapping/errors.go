package mapping

import (
	"errors"
	"fmt"
)

// ErrorKind classifies row-scoped failures. All kinds are non-fatal to a
// batch: they travel only as far as the owning generation result.
type ErrorKind string

const (
	KindMissingRequiredField      ErrorKind = "MissingRequiredField"
	KindColumnCountMismatch       ErrorKind = "ColumnCountMismatch"
	KindUnknownSourceColumn       ErrorKind = "UnknownSourceColumn"
	KindTransformationSyntaxError ErrorKind = "TransformationSyntaxError"
	KindRelatedInsertSyntaxError  ErrorKind = "RelatedInsertSyntaxError"
	KindEmptySpec                 ErrorKind = "EmptySpec"
)

// Error is a classified mapping error. Fragment carries the offending raw
// rule text when there is one, so the user can fix the mapping row.
type Error struct {
	Kind     ErrorKind
	Fragment string
	Message  string
}

func (e *Error) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("%s: %s (in %q)", e.Kind, e.Message, e.Fragment)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, fragment, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Fragment: fragment, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first classified error in err's tree, or ""
// when err carries no mapping classification.
func KindOf(err error) ErrorKind {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return ""
}

// FragmentOf returns the offending fragment of the first classified error in
// err's tree, or "".
func FragmentOf(err error) string {
	var me *Error
	if errors.As(err, &me) {
		return me.Fragment
	}
	return ""
}

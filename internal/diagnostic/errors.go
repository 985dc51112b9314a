package diagnostic

import "strings"

// Error is an error-severity Diagnostic surfaced to the caller.
type Error struct {
	Diagnostic
}

// Sentinels for errors.Is classification.
// Example: if errors.Is(err, diagnostic.ErrConfiguration) { ... }
var (
	ErrConfiguration error = &Error{Diagnostic{Kind: KindConfiguration, Index: NoIndex}}
	ErrInput         error = &Error{Diagnostic{Kind: KindInput, Index: NoIndex}}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return strings.ToLower(e.Kind.String()) + " error: " + e.Diagnostic.String()
}

// Is matches a target *Error of the same Kind. A target with a Code only
// matches errors carrying that Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}

	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

package errors

import "regexp"

// identifierRegex matches valid library identifiers: the first character
// must be a letter, underscore, dollar sign, or at sign; the remaining
// characters may additionally be digits or hyphens.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_$@][A-Za-z0-9@$_-]*$`)

// IsIdentifier reports whether name is a valid library identifier.
func IsIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}

// ValidateIdentifier validates a library identifier.
// It returns an INVALID_INPUT error describing the offending token.
func ValidateIdentifier(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "library identifier cannot be empty")
	}
	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid library identifier: %q", name)
	}
	return nil
}

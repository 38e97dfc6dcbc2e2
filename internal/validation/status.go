package validation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat   = errors.New("identifier must be 10 decimal digits")
	ErrInvalidChecksum = errors.New("check digit does not match")
	ErrUnknownStatus   = errors.New("unknown status")
)

type Status int

const (
	StatusUnknown Status = iota
	StatusValid
	StatusInvalidChecksum
	StatusMalformed
)

var statusNames = map[Status]string{
	StatusUnknown:         "unknown",
	StatusValid:           "valid",
	StatusInvalidChecksum: "invalid_checksum",
	StatusMalformed:       "malformed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, text)
}

func wellFormed(identifier string) bool {
	if len(identifier) != Length {
		return false
	}

	for i := 0; i < len(identifier); i++ {
		if identifier[i] < '0' || identifier[i] > '9' {
			return false
		}
	}

	return true
}

// Check is the strict variant of IsValid: identifiers with the wrong
// length or non-digit characters are reported as malformed instead of
// being run through the arithmetic.
func Check(identifier string) Status {
	if !wellFormed(identifier) {
		return StatusMalformed
	}

	if Sum(identifier)%11 != 0 {
		return StatusInvalidChecksum
	}

	return StatusValid
}

func Validate(identifier string) error {
	switch Check(identifier) {
	case StatusMalformed:
		return fmt.Errorf("%q: %w", identifier, ErrInvalidFormat)
	case StatusInvalidChecksum:
		return fmt.Errorf("%q: %w", identifier, ErrInvalidChecksum)
	}
	return nil
}

func CheckBatch(identifiers []*string) []Status {
	statuses := make([]Status, len(identifiers))

	for i, identifier := range identifiers {
		if identifier == nil {
			statuses[i] = StatusUnknown
			continue
		}

		statuses[i] = Check(*identifier)
	}

	return statuses
}

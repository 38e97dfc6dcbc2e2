package validation

// Length is the number of characters in an identifier: nine body digits
// followed by one check digit.
const Length = 10

// Weight returns the multiplier applied to the digit at position.
// Body positions 0..8 weigh 10 down to 2, the check digit weighs 1.
func Weight(position int) int {
	if position == Length-1 {
		return 1
	}
	return 10 - position
}

// Sum returns the weighted sum of a 10-character identifier. Each byte
// contributes its raw offset from '0', so non-digit bytes are not rejected.
// Bytes are unsigned: 0x80..0xff yield offsets 80..207.
func Sum(identifier string) int {
	var sum int

	for position := 0; position < Length-1; position++ {
		digit := int(identifier[position]) - '0'

		sum += digit * Weight(position)
	}

	sum += int(identifier[Length-1]) - '0'

	return sum
}

// IsValid reports whether the check digit closes the weighted sum to a
// multiple of 11. Identifiers that are not exactly 10 bytes long are never
// valid; the character class is not checked.
func IsValid(identifier string) bool {
	if len(identifier) != Length {
		return false
	}

	return Sum(identifier)%11 == 0
}

// ValidateBatch maps IsValid over identifiers preserving order.
func ValidateBatch(identifiers []string) []bool {
	results := make([]bool, len(identifiers))

	for i, identifier := range identifiers {
		results[i] = IsValid(identifier)
	}

	return results
}

// ValidateNullable is ValidateBatch for inputs with missing slots:
// a nil identifier yields a nil result.
func ValidateNullable(identifiers []*string) []*bool {
	results := make([]*bool, len(identifiers))

	for i, identifier := range identifiers {
		if identifier == nil {
			continue
		}

		valid := IsValid(*identifier)
		results[i] = &valid
	}

	return results
}

package fuzzyscore

// Byte classification and boundary detection.
//
// The engine never decodes UTF-8: every byte is either an ASCII letter,
// an ASCII digit, ASCII whitespace, or treated opaquely as "other". This
// mirrors the teacher's asciiCharClasses lookup table, adapted from a
// rune classifier to a pure byte classifier per the byte-sequence model
// the scoring engine operates on.

// charClass is the 37-way classification used to build PreparedQuery's
// bitmask: 26 letters, 10 digits, 1 bucket for everything else.
type charClass uint8

const (
	classOther charClass = 36
)

// bitClassOf returns the bitmask bit index (0-36) for a lowercased byte.
func bitClassOf(lower byte) charClass {
	switch {
	case lower >= 'a' && lower <= 'z':
		return charClass(lower - 'a')
	case lower >= '0' && lower <= '9':
		return charClass(26 + lower - '0')
	default:
		return classOther
	}
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsUpper reports whether b is an ASCII uppercase letter.
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsLetter reports whether b is an ASCII letter, either case.
func IsLetter(b byte) bool {
	return IsLower(b) || IsUpper(b)
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return IsLetter(b) || IsDigit(b)
}

// IsWhitespace reports whether b is ASCII whitespace.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// IsWordByte reports whether b is an alphanumeric byte or underscore.
// Boundary detection does not use it: boundaryClassAt still treats an
// underscore before an alphanumeric byte as a delimiter boundary.
func IsWordByte(b byte) bool {
	return IsAlnum(b) || b == '_'
}

// ToLower ASCII-folds b; non-letter and non-ASCII bytes pass through
// unchanged. This is the single arithmetic step spec.md §9 calls for.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b | 0x20
	}
	return b
}

// BoundaryClass classifies a byte position as the start of a word in one
// of three ways, or not a boundary at all.
type BoundaryClass uint8

const (
	BoundaryNone BoundaryClass = iota
	BoundaryWhitespace
	BoundaryDelimiter
	BoundaryCamel
)

// boundaryClassAt computes the boundary class of position i given the
// previous byte prev and the current byte curr, per spec.md §4.1.
func boundaryClassAt(prev, curr byte) BoundaryClass {
	if IsWhitespace(prev) && !IsWhitespace(curr) {
		return BoundaryWhitespace
	}
	if !IsAlnum(prev) && !IsWhitespace(prev) && IsAlnum(curr) {
		return BoundaryDelimiter
	}
	if IsLower(prev) && IsUpper(curr) {
		return BoundaryCamel
	}
	if IsLetter(prev) && IsDigit(curr) {
		return BoundaryCamel
	}
	if IsDigit(prev) && IsLetter(curr) {
		return BoundaryCamel
	}
	return BoundaryNone
}

// fillBoundaryClasses fills dst[0:len(s)] with the boundary class of each
// position in s. dst must have length >= len(s). Position 0 is always
// treated as a boundary of the strongest class available (whitespace),
// matching the teacher's bonusAt(idx=0) => bonusBoundaryWhite shortcut.
func fillBoundaryClasses(dst []BoundaryClass, s []byte) {
	if len(s) == 0 {
		return
	}
	dst[0] = BoundaryWhitespace
	for i := 1; i < len(s); i++ {
		dst[i] = boundaryClassAt(s[i-1], s[i])
	}
}

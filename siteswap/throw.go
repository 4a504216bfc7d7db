package siteswap

import "strings"

// Kind tags the variant stored in a Throw.
type Kind uint8

const (
	// Invalid marks a value that failed to decode. It is the zero Kind so
	// that a zero Throw is never mistaken for a real throw.
	Invalid Kind = iota
	// Height is a real throw; Throw.Height holds the beat count.
	Height
	// Self matches any height caught by the throwing juggler.
	Self
	// Pass matches any height caught by another juggler.
	Pass
	// DontCare matches every throw. Only meaningful inside filter patterns.
	DontCare
	// Free marks an unoccupied beat in a landing interface or an unset
	// position of a partially built pattern.
	Free
)

// Throw is one position of a pattern: a height or a symbol.
type Throw struct {
	kind   Kind
	height uint32
}

// Symbolic throws.
var (
	SelfThrow     = Throw{kind: Self}
	PassThrow     = Throw{kind: Pass}
	DontCareThrow = Throw{kind: DontCare}
	FreeThrow     = Throw{kind: Free}
	InvalidThrow  = Throw{kind: Invalid}
)

// H returns a height throw. Negative heights yield InvalidThrow.
func H(n int) Throw {
	if n < 0 {
		return InvalidThrow
	}

	return Throw{kind: Height, height: uint32(n)}
}

// Kind reports the variant of t.
func (t Throw) Kind() Kind { return t.kind }

// IsHeight reports whether t is a real throw.
func (t Throw) IsHeight() bool { return t.kind == Height }

// IsFree reports whether t is the Free marker.
func (t Throw) IsFree() bool { return t.kind == Free }

// Height returns the throw height, or 0 for symbols.
func (t Throw) Height() int {
	if t.kind != Height {
		return 0
	}

	return int(t.height)
}

// rank maps t onto a single integer line: heights keep their value and
// symbols sit below zero as Self > Pass > DontCare > Free > Invalid.
func (t Throw) rank() int {
	switch t.kind {
	case Height:
		return int(t.height)
	case Self:
		return -1
	case Pass:
		return -2
	case DontCare:
		return -3
	case Free:
		return -4
	default:
		return -5
	}
}

// Compare orders two throws by rank. It returns -1, 0 or +1.
func (t Throw) Compare(o Throw) int {
	a, b := t.rank(), o.rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MaxHeight is the highest height with a one-character encoding ('z').
const MaxHeight = 35

// Char encodes t as a single character: 0-9, then a..z for heights 10 to
// MaxHeight; s, p, ?, * for Self, Pass, DontCare, Free; ! otherwise.
// Heights above MaxHeight have no encoding and also yield '!'.
func (t Throw) Char() rune {
	switch t.kind {
	case Height:
		switch {
		case t.height < 10:
			return rune('0' + t.height)
		case t.height <= MaxHeight:
			return rune('a' + t.height - 10)
		}
		return '!'
	case Self:
		return 's'
	case Pass:
		return 'p'
	case DontCare:
		return '?'
	case Free:
		return '*'
	default:
		return '!'
	}
}

// String returns the single-character encoding of t.
func (t Throw) String() string { return string(t.Char()) }

// ParseThrow decodes one character. Unknown characters yield InvalidThrow.
// Both 'O' and '*' decode to Free.
func ParseThrow(c rune) Throw {
	switch {
	case c == 'p':
		return PassThrow
	case c == 's':
		return SelfThrow
	case c == '?':
		return DontCareThrow
	case c == 'O', c == '*':
		return FreeThrow
	case c >= '0' && c <= '9':
		return H(int(c - '0'))
	case c >= 'a' && c <= 'z':
		return H(int(c-'a') + 10)
	}

	return InvalidThrow
}

// Word returns a readable name used in filter descriptions.
func (t Throw) Word() string {
	switch t.kind {
	case Self:
		return "self"
	case Pass:
		return "pass"
	case DontCare:
		return "do not care"
	case Free:
		return "free"
	case Invalid:
		return "invalid"
	}

	return t.String()
}

// ParseWord is the inverse of Word. Single characters are decoded with
// ParseThrow; anything else is Invalid.
func ParseWord(s string) Throw {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self":
		return SelfThrow
	case "pass":
		return PassThrow
	case "do not care", "dontcare", "any":
		return DontCareThrow
	case "free":
		return FreeThrow
	}
	r := []rune(strings.TrimSpace(s))
	if len(r) == 1 {
		return ParseThrow(r[0])
	}

	return InvalidThrow
}

// IsSelfHeight reports whether height h returns to the throwing juggler.
func IsSelfHeight(h, jugglers int) bool {
	if jugglers < 1 {
		return false
	}

	return h%jugglers == 0
}

// IsPassHeight reports whether height h is caught by another juggler.
func IsPassHeight(h, jugglers int) bool {
	if jugglers < 1 {
		return false
	}

	return h%jugglers != 0
}

// Matches applies the symbolic match rule between a filter value and a
// pattern value.
//
// For a concrete height: Self and Pass match by juggler arithmetic,
// DontCare always matches and Free never does. For a symbolic value:
// DontCare matches anything, Free matches nothing (the position is still
// open), otherwise both codes must be identical.
func Matches(patternValue, value Throw, jugglers int) bool {
	if value.kind == Height {
		switch patternValue.kind {
		case Self:
			return IsSelfHeight(value.Height(), jugglers)
		case Pass:
			return IsPassHeight(value.Height(), jugglers)
		case DontCare:
			return true
		case Free:
			return false
		}
	} else {
		switch value.kind {
		case DontCare:
			return true
		case Free:
			return false
		}
	}

	return patternValue == value
}

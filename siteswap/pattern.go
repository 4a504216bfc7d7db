package siteswap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/juggle/cyclic"
)

// ErrInvalidThrow indicates that a pattern string contains a character
// that does not decode to a throw or symbol.
var ErrInvalidThrow = errors.New("siteswap: invalid throw")

// ErrSymbolicThrow indicates a symbol (Self, Pass, DontCare, Free) where
// only concrete heights are allowed.
var ErrSymbolicThrow = errors.New("siteswap: symbolic throw")

// Pattern is a periodic throw sequence for a number of jugglers.
// A zero-length pattern is valid and stands for "no transition needed".
type Pattern struct {
	seq      *cyclic.Seq[Throw]
	jugglers int
}

// New returns a pattern holding a copy of throws.
func New(throws []Throw, jugglers int) *Pattern {
	return &Pattern{seq: cyclic.From(throws), jugglers: jugglers}
}

// Filled returns a pattern of the given period with every position set to t.
func Filled(period int, t Throw, jugglers int) *Pattern {
	return &Pattern{seq: cyclic.New(period, t), jugglers: jugglers}
}

// FromHeights builds a pattern from plain heights. Negative heights become
// Invalid throws.
func FromHeights(heights []int, jugglers int) *Pattern {
	throws := make([]Throw, len(heights))
	for i, h := range heights {
		throws[i] = H(h)
	}

	return New(throws, jugglers)
}

// Parse decodes one character per throw (see ParseThrow). Undecodable
// characters become Invalid throws; check HasInvalid before trusting the
// result.
func Parse(s string, jugglers int) *Pattern {
	var throws []Throw
	for _, c := range s {
		throws = append(throws, ParseThrow(c))
	}

	return New(throws, jugglers)
}

// ParseStrict is Parse followed by a check for Invalid throws.
func ParseStrict(s string, jugglers int) (*Pattern, error) {
	p := Parse(strings.TrimSpace(s), jugglers)
	for i := 0; i < p.Period(); i++ {
		if p.At(i).Kind() == Invalid {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidThrow, []rune(strings.TrimSpace(s))[i], i)
		}
	}

	return p, nil
}

// ParseHeights is ParseStrict restricted to concrete heights: symbols
// such as 's' or '?' are rejected with ErrSymbolicThrow. Use it for
// patterns that are juggled rather than matched.
func ParseHeights(s string, jugglers int) (*Pattern, error) {
	p, err := ParseStrict(s, jugglers)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.Period(); i++ {
		if t := p.At(i); !t.IsHeight() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrSymbolicThrow, t.Char(), i)
		}
	}

	return p, nil
}

// Clone returns an independent copy of p.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{seq: p.seq.Clone(), jugglers: p.jugglers}
}

// At returns the throw at position i, taken modulo the period.
func (p *Pattern) At(i int) Throw { return p.seq.At(i) }

// Set stores t at position i, taken modulo the period.
func (p *Pattern) Set(i int, t Throw) { p.seq.Set(i, t) }

// Period returns the number of throws in one cycle.
func (p *Pattern) Period() int { return p.seq.Len() }

// Jugglers returns the juggler count the pattern is interpreted for.
func (p *Pattern) Jugglers() int { return p.jugglers }

// Throws returns a copy of the throws in index order.
func (p *Pattern) Throws() []Throw { return p.seq.Values() }

// RotateLeft rotates so that position n becomes position 0.
func (p *Pattern) RotateLeft(n int) { p.seq.RotateLeft(n) }

// RotateRight is the inverse of RotateLeft.
func (p *Pattern) RotateRight(n int) { p.seq.RotateRight(n) }

// MaxThrow returns the highest throw height, 0 if there is none.
func (p *Pattern) MaxThrow() int {
	highest := 0
	for i := 0; i < p.Period(); i++ {
		if h := p.At(i); h.IsHeight() && h.Height() > highest {
			highest = h.Height()
		}
	}

	return highest
}

// PartialSum sums the heights at positions start..stop inclusive.
// Symbols contribute nothing.
func (p *Pattern) PartialSum(start, stop int) int {
	sum := 0
	for i := start; i <= stop; i++ {
		sum += p.At(i).Height()
	}

	return sum
}

// Objects returns sum(heights) / period; 0 for the empty pattern.
func (p *Pattern) Objects() int {
	if p.Period() == 0 {
		return 0
	}

	return p.PartialSum(0, p.Period()-1) / p.Period()
}

// InRange reports whether every position is a height within [lo, hi].
func (p *Pattern) InRange(lo, hi int) bool {
	for i := 0; i < p.Period(); i++ {
		if r := p.At(i).rank(); r < lo || r > hi {
			return false
		}
	}

	return true
}

// HasInvalid reports whether any position holds an Invalid throw.
func (p *Pattern) HasInvalid() bool {
	for i := 0; i < p.Period(); i++ {
		if p.At(i).Kind() == Invalid {
			return true
		}
	}

	return false
}

// Swap exchanges the landing beats of the throws at i and i+1:
// (a, b) becomes (b+1, a-1). The result may be Invalid if a is 0 or a
// position holds a symbol.
func (p *Pattern) Swap(i int) {
	a, b := p.At(i), p.At(i+1)
	if !a.IsHeight() || !b.IsHeight() {
		return
	}
	p.Set(i+1, H(a.Height()-1))
	p.Set(i, H(b.Height()+1))
}

// Compare orders patterns position by position; on a common prefix the
// shorter pattern is smaller.
func (p *Pattern) Compare(o *Pattern) int {
	n := min(p.Period(), o.Period())
	for i := 0; i < n; i++ {
		if c := p.At(i).Compare(o.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case p.Period() < o.Period():
		return -1
	case p.Period() > o.Period():
		return 1
	}

	return 0
}

// Equal reports whether p and o hold the same throws. The juggler count is
// not compared.
func (p *Pattern) Equal(o *Pattern) bool { return p.Compare(o) == 0 }

// compareRotations compares the rotation starting at a with the rotation
// starting at b without materializing either.
func (p *Pattern) compareRotations(a, b int) int {
	for i := 0; i < p.Period(); i++ {
		if c := p.At(a + i).Compare(p.At(b + i)); c != 0 {
			return c
		}
	}

	return 0
}

// MakeCanonical rotates p in place to its canonical representative: the
// rotation that compares greatest. Each rotation is compared against the
// rolling best candidate.
//
// Complexity: O(p²) comparisons worst case, O(p) for the final rotation,
// no allocation.
func (p *Pattern) MakeCanonical() {
	best := 0
	for r := 1; r < p.Period(); r++ {
		if p.compareRotations(r, best) > 0 {
			best = r
		}
	}
	p.RotateLeft(best)
}

// Canonical returns a canonical copy of p.
func (p *Pattern) Canonical() *Pattern {
	c := p.Clone()
	c.MakeCanonical()

	return c
}

// IsCanonical reports whether no rotation of p compares greater than p.
func (p *Pattern) IsCanonical() bool {
	for r := 1; r < p.Period(); r++ {
		if p.compareRotations(r, 0) > 0 {
			return false
		}
	}

	return true
}

// PatternView returns a copy where every height is replaced by Self or
// Pass according to the juggler count. Symbols are kept.
func (p *Pattern) PatternView() *Pattern {
	view := p.Clone()
	for i := 0; i < p.Period(); i++ {
		t := p.At(i)
		if !t.IsHeight() {
			continue
		}
		if IsPassHeight(t.Height(), p.jugglers) {
			view.Set(i, PassThrow)
		}
		if IsSelfHeight(t.Height(), p.jugglers) {
			view.Set(i, SelfThrow)
		}
	}

	return view
}

// Local returns one local siteswap per juggler: juggler j throws every
// n-th beat of the global pattern, starting at beat j.
func (p *Pattern) Local() []*Pattern {
	if p.jugglers < 1 {
		return nil
	}
	locals := make([]*Pattern, p.jugglers)
	for j := range locals {
		locals[j] = Filled(p.Period(), FreeThrow, 1)
		for i := 0; i < p.Period(); i++ {
			locals[j].Set(i, p.At(p.jugglers*i+j))
		}
	}

	return locals
}

package siteswap

import (
	"math"
	"strconv"
	"strings"
)

// String encodes p with one character per throw (see Throw.Char).
func (p *Pattern) String() string {
	var b strings.Builder
	for i := 0; i < p.Period(); i++ {
		b.WriteRune(p.At(i).Char())
	}

	return b.String()
}

// DividedString writes every height divided by the juggler count with at
// most one decimal ("3.5 3 3"), the usual notation for passing patterns.
func (p *Pattern) DividedString() string {
	parts := make([]string, 0, p.Period())
	for i := 0; i < p.Period(); i++ {
		parts = append(parts, p.divided(p.At(i)))
	}

	return strings.Join(parts, " ")
}

// LocalStrings renders the local view of every juggler. Passes carry the
// receiving juggler's letter (three or more jugglers) and a crossing mark:
// "x" for a crossing pass, "s" for a straight one.
func (p *Pattern) LocalStrings() []string {
	if p.jugglers <= 1 {
		return []string{p.String()}
	}
	n := p.jugglers
	out := make([]string, 0, n)
	for j := 0; j < n; j++ {
		parts := make([]string, 0, p.Period())
		for i := 0; i < p.Period(); i++ {
			position := j + i*n
			t := p.At(position)
			s := p.divided(t)
			if t.IsHeight() && IsPassHeight(t.Height(), n) {
				if n >= 3 {
					s += string(rune('A' + (position+t.Height())%n))
				}
				if ((j+t.Height())/n)%2 == 0 {
					s += "x"
				} else {
					s += "s"
				}
			}
			parts = append(parts, s)
		}
		out = append(out, strings.Join(parts, " "))
	}

	return out
}

// divided formats one throw for the divided notations.
func (p *Pattern) divided(t Throw) string {
	if !t.IsHeight() || p.jugglers < 1 {
		return t.String()
	}
	v := math.Round(float64(t.Height())/float64(p.jugglers)*10) / 10

	return strconv.FormatFloat(v, 'f', -1, 64)
}

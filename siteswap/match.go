package siteswap

// CountValue counts the positions whose throw matches v under the
// symbolic match rule (see Matches).
func (p *Pattern) CountValue(v Throw) int {
	return p.CountValuePartial(v, p.Period()-1)
}

// CountValuePartial counts matching positions in the prefix 0..index
// inclusive.
func (p *Pattern) CountValuePartial(v Throw, index int) int {
	count := 0
	for i := 0; i <= index; i++ {
		if Matches(v, p.At(i), p.jugglers) {
			count++
		}
	}

	return count
}

// IsPattern reports whether pat occurs in p at any rotation offset.
// The match may wrap around the end of p. An empty pat always matches.
func (p *Pattern) IsPattern(pat *Pattern) bool {
	if pat.Period() == 0 {
		return true
	}
	for i := 0; i < p.Period(); i++ {
		if p.IsPatternAt(pat, i) {
			return true
		}
	}

	return false
}

// IsPatternAt reports whether every position of pat matches p starting at
// offset start.
func (p *Pattern) IsPatternAt(pat *Pattern, start int) bool {
	for i := 0; i < pat.Period(); i++ {
		if !Matches(pat.At(i), p.At(i+start), p.jugglers) {
			return false
		}
	}

	return true
}

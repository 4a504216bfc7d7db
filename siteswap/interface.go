package siteswap

// Interface returns the cyclic landing interface of p: position k holds the
// throw that lands on beat k (mod period), Free where nothing lands. On a
// collision the later throw wins; use IsValid to detect collisions.
func (p *Pattern) Interface() *Pattern {
	return p.InterfaceWith(FreeThrow)
}

// InterfaceWith is Interface with a custom value for empty beats.
func (p *Pattern) InterfaceWith(empty Throw) *Pattern {
	iface := Filled(p.Period(), empty, p.jugglers)
	for i := 0; i < p.Period(); i++ {
		t := p.At(i)
		if !t.IsHeight() {
			continue
		}
		iface.Set(i+t.Height(), t)
	}

	return iface
}

// ProjectInterface builds a linear (non-wrapping) interface of length
// interfaceLength from the first scanLength throws of p, reading p
// cyclically. Symbols and throws landing at or beyond interfaceLength are
// skipped; collisions are overwritten, the last write wins.
func (p *Pattern) ProjectInterface(empty Throw, interfaceLength, scanLength int) *Pattern {
	iface := Filled(interfaceLength, empty, p.jugglers)
	if p.Period() == 0 {
		return iface
	}
	for i := 0; i < scanLength; i++ {
		t := p.At(i)
		if !t.IsHeight() || i+t.Height() >= interfaceLength {
			continue
		}
		iface.Set(i+t.Height(), t)
	}

	return iface
}

// IsValid reports whether no two throws of p land on the same beat.
// Symbols are ignored. The empty pattern is valid.
func (p *Pattern) IsValid() bool {
	iface := Filled(p.Period(), FreeThrow, p.jugglers)
	for i := 0; i < p.Period(); i++ {
		t := p.At(i)
		if !t.IsHeight() {
			continue
		}
		if !iface.At(i + t.Height()).IsFree() {
			return false
		}
		iface.Set(i+t.Height(), t)
	}

	return true
}

// Transitions between a pattern and the cascade.
//
// Rationale:
//  1. Getin and Getout work on a linear projection of the landing
//     interface (ProjectInterface) so throws that land past its end are
//     ignored instead of wrapping into the transition beats.
//  2. Transition throws start at the object count and are pushed up
//     (getin) or down (getout) to the next free beat. Greedy placement
//     gives the shortest sequence that never collides with the pattern.
//  3. Local variants only redistribute the global throws over the
//     jugglers' hands; they never invent new heights.

package siteswap

// Getin returns the shortest throw sequence that leads from the cascade
// of Objects() balls into p without landing collisions. An empty result
// means p can be started directly.
//
// The pattern is projected onto a linear interface of period+maxThrow
// beats. Each getin throw starts at the object count and is raised until
// it lands on a free beat; throws are placed front to back.
//
// Complexity: O(period + maxThrow) for the interface, plus O(length·span)
// for the slot scan where length ≤ objects.
func (p *Pattern) Getin() *Pattern {
	if p.Period() == 0 {
		return New(nil, p.jugglers)
	}
	var (
		objects = p.Objects()
		span    = p.Period() + p.MaxThrow()
		iface   = p.ProjectInterface(FreeThrow, span, span)
		length  int
		i, h    int
	)

	// The getin is as long as the first occupied beat is early.
	for i = 0; i < objects; i++ {
		if !iface.At(i).IsFree() {
			length = objects - i
			break
		}
	}

	getin := Filled(length, H(objects), p.jugglers)
	for i = 0; i < length; i++ {
		offset := i - length
		h = objects
		for h < objects+span && !iface.At(h+offset).IsFree() {
			h++
		}
		getin.Set(i, H(h))
		iface.Set(h+offset, H(h))
	}

	return getin
}

// Getout returns the shortest throw sequence that leads from p back to
// the cascade. Getout throws start at the object count and are lowered
// until they land on a free beat; throws are placed back to front.
//
// The interface covers as many whole periods as a max throw spans, so
// throws from earlier periods that are still in the air are respected.
//
// Complexity: O(GetoutPeriods·period + maxThrow) for the interface, plus
// O(length·objects) for the slot scan where length < maxThrow.
func (p *Pattern) Getout() *Pattern {
	if p.Period() == 0 {
		return New(nil, p.jugglers)
	}
	var (
		objects  = p.Objects()
		maxThrow = p.MaxThrow()
		steady   = p.steadyLength()
		span     = steady + maxThrow
		iface    = p.ProjectInterface(FreeThrow, span, steady)
		length   int
		i, h     int
	)

	// The getout is as long as the last occupied beat is late.
	for i = 0; i < maxThrow-objects; i++ {
		if !iface.At(span - i - 1).IsFree() {
			length = maxThrow - objects - i
			break
		}
	}

	getout := Filled(length, H(objects), p.jugglers)
	for i = length - 1; i >= 0; i-- {
		offset := steady + i
		h = objects
		for h > 0 && !iface.At(h+offset).IsFree() {
			h--
		}
		getout.Set(i, H(h))
		iface.Set(h+offset, H(h))
	}

	return getout
}

// GetoutPeriods returns how many periods of p Getout assumes were juggled
// before it: the smallest whole number of periods covering the highest
// throw, at least one.
func (p *Pattern) GetoutPeriods() int {
	if p.Period() == 0 {
		return 0
	}

	return max(1, (p.MaxThrow()+p.Period()-1)/p.Period())
}

// steadyLength is the number of beats of p that precede a getout.
func (p *Pattern) steadyLength() int { return p.GetoutPeriods() * p.Period() }

// IsGetinFree reports whether p can be entered without a getin.
func (p *Pattern) IsGetinFree() bool {
	return p.Getin().Period() == 0
}

// RotateGetinFree rotates p until it needs no getin. It reports false and
// leaves p in its original rotation if no such rotation exists.
func (p *Pattern) RotateGetinFree() bool {
	for i := 0; i < p.Period(); i++ {
		if p.IsGetinFree() {
			return true
		}
		p.RotateRight(1)
	}

	return p.Period() == 0
}

// LocalGetins splits the global getin into one sequence per juggler.
// Global throw i belongs to the juggler whose hand throws on that beat;
// a juggler only starts its local getin once the beat two rounds after
// its throw is already occupied by the pattern. Jugglers without getin
// throws get an empty pattern.
func (p *Pattern) LocalGetins() []*Pattern {
	n := p.jugglers
	if n < 1 {
		return nil
	}
	var (
		span    = p.Period() + p.MaxThrow()
		iface   = p.ProjectInterface(FreeThrow, span, span)
		global  = p.Getin()
		length  = global.Period()
		locals  = make([]*Pattern, n)
		indices = make([]int, n)
	)

	for i := 0; i < length; i++ {
		juggler := (i + n - length%n) % n
		target := i - length + global.At(i).Height()

		if locals[juggler] == nil {
			sameHand := target - 2*n
			if sameHand >= 0 && !iface.At(sameHand).IsFree() {
				locals[juggler] = Filled((length-i-1)/n+1, H(0), n)
			}
		}

		if locals[juggler] != nil {
			iface.Set(target, global.At(i))
			locals[juggler].Set(indices[juggler], global.At(i))
			indices[juggler]++
		}
	}

	for j := range locals {
		if locals[j] == nil {
			locals[j] = New(nil, n)
		}
	}

	return locals
}

// LocalGetouts splits the global getout into one sequence per juggler,
// continuing the hand order after the steady part the getout was computed
// for.
func (p *Pattern) LocalGetouts() []*Pattern {
	n := p.jugglers
	if n < 1 {
		return nil
	}
	var (
		global = p.Getout()
		length = global.Period()
		shift  = p.steadyLength() % n
		locals = make([]*Pattern, n)
	)

	for j := range locals {
		start := j - shift
		if j < shift {
			start += n
		}
		size := 0
		if length-start > 0 {
			size = (length-start-1)/n + 1
		}
		locals[j] = Filled(size, H(0), n)
	}

	for i := 0; i < length; i++ {
		juggler := (shift + i) % n
		locals[juggler].Set(i/n, global.At(i))
	}

	return locals
}

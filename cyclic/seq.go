package cyclic

// Seq is a fixed-length sequence with cyclic indexing.
// The zero value is an empty sequence ready to use.
type Seq[T any] struct {
	data []T
}

// New returns a sequence of length n with every element set to fill.
// A negative n yields an empty sequence.
func New[T any](n int, fill T) *Seq[T] {
	if n < 0 {
		n = 0
	}
	s := &Seq[T]{data: make([]T, n)}
	s.Fill(fill)

	return s
}

// From returns a sequence holding a copy of values.
func From[T any](values []T) *Seq[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Seq[T]{data: data}
}

// Len returns the period of the sequence.
func (s *Seq[T]) Len() int { return len(s.data) }

// Index maps any logical index onto [0, Len()).
// For an empty sequence it returns 0.
func (s *Seq[T]) Index(i int) int {
	n := len(s.data)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// At returns the element at logical index i (taken modulo Len).
func (s *Seq[T]) At(i int) T {
	var zero T
	if len(s.data) == 0 {
		return zero
	}

	return s.data[s.Index(i)]
}

// Set stores v at logical index i (taken modulo Len).
func (s *Seq[T]) Set(i int, v T) {
	if len(s.data) == 0 {
		return
	}
	s.data[s.Index(i)] = v
}

// Fill overwrites every element with v.
func (s *Seq[T]) Fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

// RotateLeft shifts the sequence so that the element at index n becomes
// the element at index 0.
func (s *Seq[T]) RotateLeft(n int) {
	size := len(s.data)
	if size < 2 {
		return
	}
	k := s.Index(n)
	if k == 0 {
		return
	}
	reverse(s.data[:k])
	reverse(s.data[k:])
	reverse(s.data)
}

// RotateRight is the inverse of RotateLeft: the element at index 0 moves
// to index n.
func (s *Seq[T]) RotateRight(n int) {
	s.RotateLeft(-n)
}

// Clone returns an independent copy of s.
func (s *Seq[T]) Clone() *Seq[T] {
	return From(s.data)
}

// Values returns a copy of the elements in index order.
func (s *Seq[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)

	return out
}

// reverse reverses a in place.
func reverse[T any](a []T) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}

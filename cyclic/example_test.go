package cyclic_test

import (
	"fmt"

	"github.com/katalvlaran/juggle/cyclic"
)

// ExampleSeq_At reads across the period boundary in both directions.
//
// Scenario:
//
//	s = [1 2 3 4 5]; index -1 is the last element, index 7 wraps to 2.
//
// Complexity: O(1) per access.
func ExampleSeq_At() {
	s := cyclic.From([]int{1, 2, 3, 4, 5})
	fmt.Println(s.At(-1), s.At(7), s.Index(-6))
	// Output:
	// 5 3 4
}

// ExampleSeq_RotateLeft rotates a sequence and back again.
//
// Complexity: O(n) time, O(1) extra space.
func ExampleSeq_RotateLeft() {
	s := cyclic.From([]int{1, 2, 3, 4, 5})
	s.RotateLeft(2)
	fmt.Println(s.Values())
	s.RotateRight(2)
	fmt.Println(s.Values())
	// Output:
	// [3 4 5 1 2]
	// [1 2 3 4 5]
}

// ExampleSeq_Set uses a sequence as a ring: the fourth write overwrites
// the first slot.
func ExampleSeq_Set() {
	ring := cyclic.New(3, "-")
	for i, w := range []string{"a", "b", "c", "d"} {
		ring.Set(i, w)
	}
	fmt.Println(ring.Values())
	// Output:
	// [d b c]
}

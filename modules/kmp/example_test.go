package kmp_test

import (
	"fmt"

	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/antgroup/seqmatch/modules/kmp"
)

func ExampleSearch() {
	subject := deque.New[float64](deque.BackingList)
	pattern := deque.New[float64](deque.BackingList)
	defer subject.Release()
	defer pattern.Release()
	_ = deque.Load(subject, []float64{3, 1, 4, 1, 5})
	_ = deque.Load(pattern, []float64{1, 5})

	m, err := kmp.Search(subject, pattern)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	fmt.Println(m)
	// Output: Pattern found at position 3
}

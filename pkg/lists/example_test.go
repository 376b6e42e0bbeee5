package lists_test

import (
	"errors"
	"fmt"

	"github.com/Avik32223/linked-list/pkg/lists"
)

func Example() {
	l := lists.NewList[int]()
	l.AddToFront(5)
	l.AddToBack(10)
	l.AddAtIndex(1, 7)
	fmt.Println(l)

	back, _ := l.RemoveFromBack()
	fmt.Println(back, l)

	first, _ := l.Get(0)
	fmt.Println(first)

	removed, _ := l.RemoveAtIndex(0)
	fmt.Println(removed, l, l.IsEmpty())

	l.Clear()
	fmt.Println(l.IsEmpty())
	// Output:
	// [5 7 10]
	// 10 [5 7]
	// 5
	// 5 [7] false
	// true
}

func ExampleList_RemoveLastOccurrence() {
	l := lists.NewList[int]()
	for _, v := range []int{1, 2, 3, 2} {
		l.AddToBack(v)
	}
	l.RemoveLastOccurrence(2)
	fmt.Println(l.ToSlice())

	_, err := l.RemoveLastOccurrence(4)
	fmt.Println(errors.Is(err, lists.ErrNotFound))
	// Output:
	// [1 2 3]
	// true
}

package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/frontier"
)

// ExamplePriorityQueue_Update shows decrease-key: "far" is queued with a large
// priority, then a cheaper route is found and it moves ahead of "mid".
func ExamplePriorityQueue_Update() {
	pq := frontier.NewPriorityQueue[string](3)
	pq.Push("near", 1)
	pq.Push("mid", 5)
	pq.Push("far", 9)

	pq.Update("far", 2) // lowered
	pq.Update("mid", 7) // worse: ignored

	for !pq.IsEmpty() {
		v, _ := pq.Pop()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: near far mid
}

// ExampleStack shows LIFO order.
func ExampleStack() {
	var s frontier.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	for !s.IsEmpty() {
		v, _ := s.Pop()
		fmt.Print(v)
	}
	fmt.Println()
	// Output: 321
}

// ExampleQueue shows FIFO order.
func ExampleQueue() {
	var q frontier.Queue[int]
	q.Push(1)
	q.Push(2)
	q.Push(3)
	for !q.IsEmpty() {
		v, _ := q.Pop()
		fmt.Print(v)
	}
	fmt.Println()
	// Output: 123
}

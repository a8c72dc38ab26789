// Package frontier provides the ordering containers that drive a graph search:
// a LIFO Stack, a FIFO Queue and an updatable, stable min-PriorityQueue.
//
// What:
//
//   - Stack[T]:          Push / Pop / Peek, most-recently-pushed first.
//   - Queue[T]:          Push / Pop / Peek, earliest-pushed first.
//   - PriorityQueue[T]:  Push / Pop / Update (decrease-key), minimum priority first,
//     ties broken by insertion order.
//
// Why:
//
//   - DFS expands from a Stack, BFS from a Queue, UCS and A* from a PriorityQueue.
//   - The containers know nothing about states, actions or costs; they are reusable
//     for any scheduling problem that needs one of these orders.
//
// Complexity:
//
//   - Stack:          Push/Pop O(1) amortised.
//   - Queue:          Push/Pop O(1) amortised (head index with periodic compaction).
//   - PriorityQueue:  Push/Pop/Update O(log N); Contains/Priority O(1).
//
// Decrease-key:
//
//	Update(item, p) on an item already queued with a strictly higher priority lowers it
//	in place (heap.Fix) and keeps its original insertion position for tie-breaking.
//	Equal or better recorded priorities make Update a no-op; absent items are pushed.
//
// None of the containers are safe for concurrent use; a search owns its frontier.
package frontier

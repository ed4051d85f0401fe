/*
 * Filename: /Users/bao/code/genegraph/priority_queue.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Tuesday, October 20th 2026, 2:03:09 pm
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"container/heap"
)

// Item is a segment ranked by a score
type Item struct {
	ID       string
	Priority float64
	Order    int // position in the input, earlier wins ties
	index    int
}

// A PriorityQueue implements heap.Interface, Pop gives the lowest priority
type PriorityQueue []*Item

// Len returns the number of items in the queue
func (pq PriorityQueue) Len() int { return len(pq) }

// Less defines the way items get ordered
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	// Equal scores: the later item goes first so the earlier one survives
	return pq[i].Order > pq[j].Order
}

// Swap exchanges values of two elements
func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds an element to the queue
func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

// Pop removes the element with the lowest priority
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

// TopItems keeps the n items with the highest priority, highest first
func TopItems(items []*Item, n int) []*Item {
	if n <= 0 {
		return nil
	}
	pq := make(PriorityQueue, 0, n+1)
	for _, item := range items {
		heap.Push(&pq, item)
		if pq.Len() > n {
			heap.Pop(&pq)
		}
	}
	top := make([]*Item, pq.Len())
	for i := len(top) - 1; i >= 0; i-- {
		top[i] = heap.Pop(&pq).(*Item)
	}
	return top
}

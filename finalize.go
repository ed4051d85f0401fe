/*
 *  finalize.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"github.com/gonum/floats"
)

// nodeEnds keeps the trim of the left and right end of every node, -1 when
// no edge has claimed that end yet
type nodeEnds map[int]*[2]int

const (
	leftEnd  = 0
	rightEnd = 1
)

// claim sets the trim of one end unless an earlier edge already did
func (r nodeEnds) claim(id, end, cut int) {
	ends, ok := r[id]
	if !ok {
		ends = &[2]int{-1, -1}
		r[id] = ends
	}
	if ends[end] < 0 {
		ends[end] = cut
	}
}

// Trim removes the overlap between adjacent segments so that the shared
// bases are kept only once. The from side of every edge keeps the first half
// of the overlap (rounded up), the to side the second half (rounded down).
// Only the first edge at each node end counts. All overlaps are 0 after.
func (g *Graph) Trim() {
	if g.trimmed {
		return
	}
	ends := nodeEnds{}
	for _, e := range g.Edges.All() {
		// Exit of from: right end on '+', left end on '-'
		exit := rightEnd
		if e.FromOri == Minus {
			exit = leftEnd
		}
		// Entry of to: left end on '+', right end on '-'
		entry := leftEnd
		if e.ToOri == Minus {
			entry = rightEnd
		}
		ends.claim(e.From, exit, (e.Overlap+1)/2)
		ends.claim(e.To, entry, e.Overlap/2)
	}

	trimmedBp := 0
	for _, node := range g.Nodes.All() {
		lcut, rcut := 0, 0
		if cuts, ok := ends[node.ID]; ok {
			lcut, rcut = max(cuts[leftEnd], 0), max(cuts[rightEnd], 0)
		}
		n := len(node.Sequence)
		lcut = min(lcut, n)
		rcut = max(n-rcut, lcut)
		trimmedBp += n - (rcut - lcut)
		node.Sequence = node.Sequence[lcut:rcut]
		node.Length = len(node.Sequence)
	}
	for _, e := range g.Edges.All() {
		e.Overlap = 0
	}
	g.trimmed = true
	log.Noticef("Trimmed %d bp of overlaps from %d nodes", trimmedBp, g.Nodes.Len())
}

// Normalize computes the depth of every node so that the length-weighted
// mean depth over the graph is 1. Depth is the number of supporting reads
// divided by the average coverage, 0 for empty nodes.
func (g *Graph) Normalize() {
	nodes := g.Nodes.All()
	support := make([]float64, len(nodes))
	lengths := make([]float64, len(nodes))
	for i, node := range nodes {
		support[i] = float64(node.Support())
		lengths[i] = float64(node.Length)
	}

	totalLength := floats.Sum(lengths)
	if totalLength == 0 {
		for _, node := range nodes {
			node.Depth = 0
		}
		if len(nodes) > 0 {
			log.Warningf("All %d nodes are empty, depth set to 0", len(nodes))
		}
		return
	}
	avgCov := floats.Dot(support, lengths) / totalLength
	for _, node := range nodes {
		if node.Length > 0 {
			node.Depth = float64(node.Support()) / avgCov
		} else {
			node.Depth = 0
		}
	}
	log.Noticef("Average coverage: %.4f reads over %.0f bp", avgCov, totalLength)
}

/*
 *  resolver.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
)

// Observation is one window as seen on a read or reference, before
// canonicalization
type Observation struct {
	Window Window
	Locus  *Locus
}

// OverlapResolver decides what sequence a node carries and how many bases
// two consecutive observations share. The read-order and coordinate inputs
// plug different resolvers into the same Graph.
type OverlapResolver interface {
	// Segment returns the sequence stored for a canonical window
	Segment(canonical Window) []byte
	// Overlap returns the bases shared by prev and the following next
	Overlap(prev, next *Observation) int
}

// Span selects the part of a window a read-order node stores
type Span int

const (
	// SpanGene stores the middle gene of the canonical window
	SpanGene Span = iota
	// SpanWindow stores the full window
	SpanWindow
)

// ParseSpan converts the config value into a Span
func ParseSpan(s string) (Span, error) {
	switch s {
	case "", "gene":
		return SpanGene, nil
	case "window":
		return SpanWindow, nil
	}
	return SpanGene, fmt.Errorf("unknown span %q, expect gene or window", s)
}

// String outputs the config value of the span
func (s Span) String() string {
	if s == SpanWindow {
		return "window"
	}
	return "gene"
}

// GeneResolver resolves overlaps from gene adjacency alone
type GeneResolver struct {
	Span Span
}

// Segment returns the middle gene, or the whole window for SpanWindow
func (r GeneResolver) Segment(canonical Window) []byte {
	if r.Span == SpanWindow {
		return canonical.Sequence()
	}
	if len(canonical.Seqs) == 0 {
		return []byte{}
	}
	return append([]byte(nil), canonical.Seqs[len(canonical.Seqs)/2]...)
}

// Overlap is zero for middle genes since neighbours hold different genes.
// Whole windows share the last k-1 genes of prev.
func (r GeneResolver) Overlap(prev, next *Observation) int {
	if r.Span != SpanWindow || len(prev.Window.Seqs) == 0 {
		return 0
	}
	return len(prev.Window.Sequence()) - len(prev.Window.Seqs[0])
}

// CoordinateResolver resolves overlaps from the source coordinates of the
// windows
type CoordinateResolver struct{}

// Segment returns the whole window
func (r CoordinateResolver) Segment(canonical Window) []byte {
	return canonical.Sequence()
}

// Overlap computes the shared span of two consecutive windows A and B. A
// start of B beyond the end of A means the reference is circular and B
// wrapped around the origin.
//
//	A  |-------------|
//	B         |-------------|
//	          <------>  A.end - B.start + 1
func (r CoordinateResolver) Overlap(prev, next *Observation) int {
	a, b := prev.Locus, next.Locus
	if a == nil || b == nil {
		return 0
	}
	var overlap int
	if b.Start <= a.End {
		overlap = a.End - b.Start + 1
	} else {
		overlap = a.Length - (b.Start - a.Start)
	}
	if overlap < 0 {
		return 0
	}
	return overlap
}

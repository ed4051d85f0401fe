/*
 *  edge.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"bytes"
	"fmt"
)

// OrientEdge finds the single oriented representation of the adjacency
// between prev and next, two canonical nodes seen consecutively on a read.
//
//	prev  +a +b +c
//	next     +b +c +d    =>  (prev, +, next, +)
//
//	prev  +a +b +c
//	next     -c -b +d    =>  (prev, +, next, -) or (next, +, prev, -)
//
// The last case is symmetric, so the two encodings are ranked by comparing
// the spelled sequences of the joined segments.
func OrientEdge(prev, next *Node) (Edge, error) {
	a, b := prev.Kmer, next.Kmer
	k := len(a)
	if k != len(b) || k == 0 {
		return Edge{}, fmt.Errorf("%w: %s and %s differ in size", ErrNoOverlap, a, b)
	}

	if a[1:].Equal(b[:k-1]) {
		return Edge{From: prev.ID, FromOri: Plus, To: next.ID, ToOri: Plus}, nil
	}
	if b[1:].Equal(a[:k-1]) {
		return Edge{From: next.ID, FromOri: Plus, To: prev.ID, ToOri: Plus}, nil
	}

	if trailingMatch(a, b) {
		fw := concat(prev.Sequence, ReverseComplement(next.Sequence))
		rv := concat(next.Sequence, ReverseComplement(prev.Sequence))
		if pickFirst(fw, rv, prev, next) {
			return Edge{From: prev.ID, FromOri: Plus, To: next.ID, ToOri: Minus}, nil
		}
		return Edge{From: next.ID, FromOri: Plus, To: prev.ID, ToOri: Minus}, nil
	}

	if leadingMatch(a, b) {
		fw := concat(ReverseComplement(prev.Sequence), next.Sequence)
		rv := concat(ReverseComplement(next.Sequence), prev.Sequence)
		if pickFirst(fw, rv, prev, next) {
			return Edge{From: prev.ID, FromOri: Minus, To: next.ID, ToOri: Plus}, nil
		}
		return Edge{From: next.ID, FromOri: Minus, To: prev.ID, ToOri: Plus}, nil
	}

	return Edge{}, fmt.Errorf("%w: %s and %s share no %d-gene overlap",
		ErrNoOverlap, a, b, k-1)
}

// trailingMatch checks a[i] against the flipped b[k-i] for i in 1..k-1, i.e.
// the tail of a runs into the tail of b on the opposite strand
func trailingMatch(a, b Kmer) bool {
	k := len(a)
	for i := 1; i < k; i++ {
		if a[i] != b[k-i].Flip() {
			return false
		}
	}
	return true
}

// leadingMatch checks a[k-2-i] against the flipped b[i] for i in 0..k-2, i.e.
// the head of a runs into the head of b on the opposite strand
func leadingMatch(a, b Kmer) bool {
	k := len(a)
	for i := 0; i < k-1; i++ {
		if a[k-2-i] != b[i].Flip() {
			return false
		}
	}
	return true
}

// pickFirst tells whether the prev-first encoding wins the tie-break. Equal
// strings keep prev first.
func pickFirst(fw, rv []byte, prev, next *Node) bool {
	c := bytes.Compare(fw, rv)
	if c == 0 {
		log.Warningf("Symmetric k-mer edge between %d %s and %d %s, keep %d first",
			prev.ID, prev.Kmer, next.ID, next.Kmer, prev.ID)
	}
	return c <= 0
}

func concat(a, b []byte) []byte {
	s := make([]byte, 0, len(a)+len(b))
	s = append(s, a...)
	return append(s, b...)
}

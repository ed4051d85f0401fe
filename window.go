/*
 *  window.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"bytes"
	"strings"
)

// Window is a run of k consecutive gene calls together with the oriented
// sequence of each call
type Window struct {
	Genes Kmer
	Seqs  [][]byte // Seqs[i] is the sequence of Genes[i] on its own strand
}

// Decision tells how a window relates to its canonical form
type Decision int

const (
	// Keep means the window is already canonical
	Keep Decision = iota
	// Flip means the reverse complement of the window is canonical
	Flip
	// Palindrome means the window equals its reverse complement, kept as is
	Palindrome
)

// String outputs the decision name
func (d Decision) String() string {
	switch d {
	case Flip:
		return "flip"
	case Palindrome:
		return "palindrome"
	}
	return "keep"
}

// Sequence concatenates the gene sequences of the window
func (r Window) Sequence() []byte {
	return bytes.Join(r.Seqs, nil)
}

// ReverseComplement reads the window from the other strand
func (r Window) ReverseComplement() Window {
	n := len(r.Genes)
	w := Window{
		Genes: r.Genes.ReverseComplement(),
		Seqs:  make([][]byte, len(r.Seqs)),
	}
	for i, s := range r.Seqs {
		w.Seqs[n-1-i] = ReverseComplement(s)
	}
	return w
}

// Orient decides whether a window should be flipped into canonical form.
// The rules are tried in order:
//
// 1. Majority strand, more '-' calls than '+' calls means flip
// 2. End scan, the outermost pair (i, k-1-i) with agreeing strands decides
// 3. Sequence, flip when the sequence is larger than its reverse complement
// 4. Names, flip when the gene key is larger than that of the reverse
//
// A pair with disagreeing strands looks the same after reverse complement,
// so the end scan skips it. Only windows equal to their reverse complement
// in both sequence and names are palindromes.
func Orient(genes Kmer, sequence []byte) Decision {
	fw, rv := 0, 0
	for _, call := range genes {
		switch call.Strand {
		case Plus:
			fw++
		case Minus:
			rv++
		}
	}
	if fw < rv {
		return Flip
	}
	if fw > rv {
		return Keep
	}

	for i, j := 0, len(genes)-1; i <= j; i, j = i+1, j-1 {
		a, b := genes[i].Strand, genes[j].Strand
		if a == Minus && b == Minus {
			return Flip
		}
		if a == Plus && b == Plus {
			return Keep
		}
	}

	switch bytes.Compare(sequence, ReverseComplement(sequence)) {
	case 1:
		return Flip
	case -1:
		return Keep
	}

	// Same sequence on both strands, e.g. identical copies under different
	// names, the gene names decide
	switch strings.Compare(genes.Key(), genes.ReverseComplement().Key()) {
	case 1:
		return Flip
	case -1:
		return Keep
	}
	return Palindrome
}

// Canonicalize returns the canonical form of the window and the decision
// that produced it
func Canonicalize(w Window) (Window, Decision) {
	d := Orient(w.Genes, w.Sequence())
	if d == Flip {
		return w.ReverseComplement(), d
	}
	return w, d
}

/*
 *  gene.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"strings"
)

// GeneCall is an oriented reference to a named gene
type GeneCall struct {
	Name   string
	Strand byte // '+' or '-'
}

// Kmer is a window of consecutive gene calls, used as the node identity
type Kmer []GeneCall

// ParseGeneCall parses a sign-prefixed gene name, e.g. "+dnaA" or "-gyrB"
func ParseGeneCall(s string) (GeneCall, error) {
	if len(s) < 2 || (s[0] != Plus && s[0] != Minus) {
		return GeneCall{}, fmt.Errorf("%w: %q", ErrInvalidCall, s)
	}
	return GeneCall{Name: s[1:], Strand: s[0]}, nil
}

// parseLooseGeneCall is like ParseGeneCall but reads an unsigned name as '+'
func parseLooseGeneCall(s string) (GeneCall, error) {
	if s == "" {
		return GeneCall{}, fmt.Errorf("%w: empty gene name", ErrInvalidCall)
	}
	if s[0] == Plus || s[0] == Minus {
		return ParseGeneCall(s)
	}
	return GeneCall{Name: s, Strand: Plus}, nil
}

// rr map orientations to bit ('+' => '-', '-' => '+')
func rr(b byte) byte {
	if b == Minus {
		return Plus
	}
	return Minus
}

// Flip returns the same gene read from the other strand
func (r GeneCall) Flip() GeneCall {
	return GeneCall{Name: r.Name, Strand: rr(r.Strand)}
}

// String outputs the sign-prefixed gene name
func (r GeneCall) String() string {
	return string(r.Strand) + r.Name
}

// ParseKmer parses a comma-separated list of gene calls. Unsigned names are
// read on the forward strand.
func ParseKmer(s string) (Kmer, error) {
	var kmer Kmer
	for _, token := range strings.Split(s, ",") {
		call, err := parseLooseGeneCall(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		kmer = append(kmer, call)
	}
	return kmer, nil
}

// ReverseComplement reverses the gene order and flips every strand
func (r Kmer) ReverseComplement() Kmer {
	rc := make(Kmer, len(r))
	for i, call := range r {
		rc[len(r)-1-i] = call.Flip()
	}
	return rc
}

// Equal checks if two k-mers carry the same oriented calls
func (r Kmer) Equal(o Kmer) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// Key is the registry key of the k-mer
func (r Kmer) Key() string {
	return r.Join(",")
}

// Join concatenates the sign-prefixed calls with delim
func (r Kmer) Join(delim string) string {
	tokens := make([]string, len(r))
	for i, call := range r {
		tokens[i] = call.String()
	}
	return strings.Join(tokens, delim)
}

// String outputs the k-mer as a tuple, e.g. [+a,-b,+c]
func (r Kmer) String() string {
	return "[" + r.Join(",") + "]"
}

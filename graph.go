/*
 * Filename: /Users/bao/code/genegraph/graph.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Monday, October 19th 2026, 10:02:17 am
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash"
)

// Graph is the gene-order k-mer graph. Nodes and edges are added by one
// Walker at a time; Trim and Normalize run once all reads are consumed.
type Graph struct {
	K        int
	Nodes    *NodeRegistry
	Edges    *EdgeRegistry
	Resolver OverlapResolver
	trimmed  bool
}

// NewGraph makes an empty graph of k-mers of size k
func NewGraph(k int, resolver OverlapResolver) *Graph {
	return &Graph{
		K:        k,
		Nodes:    NewNodeRegistry(),
		Edges:    NewEdgeRegistry(),
		Resolver: resolver,
	}
}

// Walker adds the consecutive windows of a single read to the graph
type Walker struct {
	g       *Graph
	read    string
	first   *Observation
	firstID int
	prev    *Observation
	prevID  int
}

// Walk starts a new read, windows added to the walker are linked in order
func (g *Graph) Walk(read string) *Walker {
	return &Walker{g: g, read: read}
}

// Add canonicalizes the window, registers the node and the read as its
// evidence, and links it to the previous window of the read
func (r *Walker) Add(obs Observation) (int, error) {
	g := r.g
	if len(obs.Window.Genes) != g.K {
		return 0, fmt.Errorf("window of %d genes on `%s`, expect %d",
			len(obs.Window.Genes), r.read, g.K)
	}
	canonical, d := Canonicalize(obs.Window)
	if d == Palindrome {
		log.Warningf("Palindromic k-mer %s on `%s`, keep as given", canonical.Genes, r.read)
	}

	segment := g.Resolver.Segment(canonical)
	length := len(segment)
	if obs.Locus != nil && obs.Locus.Length > 0 {
		length = obs.Locus.Length
	}
	id, created := g.Nodes.GetOrCreate(canonical.Genes, segment, length)
	if created && obs.Locus != nil {
		locus := *obs.Locus
		g.Nodes.Get(id).Locus = &locus
	}
	g.Nodes.AddEvidence(id, r.read)

	if r.prev != nil && !g.Edges.Has(r.prevID, id) {
		edge, err := OrientEdge(g.Nodes.Get(r.prevID), g.Nodes.Get(id))
		if err != nil {
			return 0, fmt.Errorf("read `%s`: %w", r.read, err)
		}
		edge.Overlap = g.Resolver.Overlap(r.prev, &obs)
		g.Edges.Insert(edge)
	}
	if r.first == nil {
		r.first = &obs
		r.firstID = id
	}
	r.prev = &obs
	r.prevID = id
	return id, nil
}

// Close ends the read. When the last window runs into the first one, as on
// a circular reference, the two are linked to close the cycle.
func (r *Walker) Close() error {
	g := r.g
	if r.first == nil || r.prevID == r.firstID {
		return nil
	}
	k := g.K
	if !r.prev.Window.Genes[1:].Equal(r.first.Window.Genes[:k-1]) {
		return nil
	}
	if g.Edges.Has(r.prevID, r.firstID) {
		return nil
	}
	edge, err := OrientEdge(g.Nodes.Get(r.prevID), g.Nodes.Get(r.firstID))
	if err != nil {
		return fmt.Errorf("read `%s`: %w", r.read, err)
	}
	edge.Overlap = g.Resolver.Overlap(r.prev, r.first)
	g.Edges.Insert(edge)
	log.Debugf("Closed cycle on `%s` with %s", r.read, edge)
	return nil
}

// Digest hashes the canonical k-mers and the edges between them. Two graphs
// built from the same input share the digest even if their ids differ.
func (g *Graph) Digest() uint64 {
	keys := make([]string, 0, g.Nodes.Len()+g.Edges.Len())
	for _, node := range g.Nodes.All() {
		keys = append(keys, "S\t"+node.Kmer.Key())
	}
	for _, e := range g.Edges.All() {
		keys = append(keys, fmt.Sprintf("L\t%s\t%c\t%s\t%c",
			g.Nodes.Get(e.From).Kmer.Key(), e.FromOri,
			g.Nodes.Get(e.To).Kmer.Key(), e.ToOri))
	}
	sort.Strings(keys)
	h := xxhash.New()
	for _, key := range keys {
		h.Write([]byte(key))
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Report logs the graph size, components and digest
func (g *Graph) Report() {
	components := g.Components()
	largest := 0
	if len(components) > 0 {
		largest = len(components[0])
	}
	log.Noticef("Graph contains %d nodes and %d edges", g.Nodes.Len(), g.Edges.Len())
	log.Noticef("Number of connected components: %d (largest: %d nodes)",
		len(components), largest)
	log.Noticef("Graph digest: %016x", g.Digest())
}

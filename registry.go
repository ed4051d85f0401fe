/*
 *  registry.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"strings"

	"github.com/biogo/hts/sam"
)

// Locus is the place a coordinate-bearing window was taken from
type Locus struct {
	Accession string
	Start     int
	End       int
	Length    int
	Class     string
}

// String outputs the locus as accession@start-end
func (r Locus) String() string {
	return fmt.Sprintf("%s@%d-%d", r.Accession, r.Start, r.End)
}

// Node is a canonical gene k-mer in the graph
type Node struct {
	ID       int
	Kmer     Kmer
	Sequence []byte
	Length   int
	Depth    float64
	Locus    *Locus // only set for coordinate-bearing windows
	reads    []string
	readSet  map[string]struct{}
}

// Reads returns the supporting read identifiers in the order first seen
func (r *Node) Reads() []string {
	return r.reads
}

// Support is the number of distinct supporting reads
func (r *Node) Support() int {
	return len(r.reads)
}

// NodeRegistry deduplicates canonical k-mers into nodes. Not safe for
// concurrent use.
type NodeRegistry struct {
	nodes  []*Node
	index  map[string]int
	nextID int
}

// NewNodeRegistry makes an empty registry, ids start at 1
func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{
		index:  make(map[string]int),
		nextID: 1,
	}
}

// GetOrCreate returns the node id of the k-mer, creating the node on first
// sight. created reports whether a new node was made.
func (r *NodeRegistry) GetOrCreate(kmer Kmer, sequence []byte, length int) (id int, created bool) {
	key := kmer.Key()
	if id, ok := r.index[key]; ok {
		return id, false
	}
	id = r.nextID
	r.nextID++
	r.nodes = append(r.nodes, &Node{
		ID:       id,
		Kmer:     append(Kmer(nil), kmer...),
		Sequence: sequence,
		Length:   length,
		readSet:  make(map[string]struct{}),
	})
	r.index[key] = id
	return id, true
}

// AddEvidence records that read supports the node
func (r *NodeRegistry) AddEvidence(id int, read string) {
	node := r.Get(id)
	if _, ok := node.readSet[read]; ok {
		return
	}
	node.readSet[read] = struct{}{}
	node.reads = append(node.reads, read)
}

// Lookup finds the node id of a canonical k-mer
func (r *NodeRegistry) Lookup(kmer Kmer) (int, bool) {
	id, ok := r.index[kmer.Key()]
	return id, ok
}

// Get returns the node with the given id
func (r *NodeRegistry) Get(id int) *Node {
	return r.nodes[id-1]
}

// Len returns the number of nodes
func (r *NodeRegistry) Len() int {
	return len(r.nodes)
}

// All returns the nodes ordered by id
func (r *NodeRegistry) All() []*Node {
	return r.nodes
}

// Edge is an oriented adjacency between two nodes
type Edge struct {
	From    int
	FromOri byte
	To      int
	ToOri   byte
	Overlap int // number of bases shared by the two segments
}

// Cigar renders the overlap as a CIGAR match, e.g. 10M
func (r Edge) Cigar() string {
	return sam.Cigar{sam.NewCigarOp(sam.CigarMatch, r.Overlap)}.String()
}

// String outputs the edge as a GFA link body
func (r Edge) String() string {
	return strings.Join([]string{
		fmt.Sprint(r.From), string(r.FromOri),
		fmt.Sprint(r.To), string(r.ToOri),
		r.Cigar(),
	}, "\t")
}

// EdgeRegistry stores at most one edge per unordered node pair. Not safe
// for concurrent use.
type EdgeRegistry struct {
	edges []*Edge
	index map[[2]int]int
}

// NewEdgeRegistry makes an empty edge registry
func NewEdgeRegistry() *EdgeRegistry {
	return &EdgeRegistry{index: make(map[[2]int]int)}
}

// Has checks for an edge between a and b in either direction
func (r *EdgeRegistry) Has(a, b int) bool {
	if _, ok := r.index[[2]int{a, b}]; ok {
		return true
	}
	_, ok := r.index[[2]int{b, a}]
	return ok
}

// Insert adds the edge unless its node pair is already linked
func (r *EdgeRegistry) Insert(e Edge) bool {
	if r.Has(e.From, e.To) {
		return false
	}
	r.index[[2]int{e.From, e.To}] = len(r.edges)
	r.edges = append(r.edges, &e)
	return true
}

// Len returns the number of edges
func (r *EdgeRegistry) Len() int {
	return len(r.edges)
}

// All returns the edges in insertion order
func (r *EdgeRegistry) All() []*Edge {
	return r.edges
}

/*
 *  build_test.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/20/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanghaibao/genegraph"
)

func TestReadGraphBuilder(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 3
	gfafile := filepath.Join(t.TempDir(), "graph.gfa")
	p := genegraph.ReadGraphBuilder{
		Genefile:  "tests/genes.fq",
		Orderfile: "tests/orders.json",
		OutFile:   gfafile,
		Config:    config,
	}
	require.NoError(t, p.Run())

	g := p.Graph
	require.Equal(t, 3, g.Nodes.Len())
	assert.Equal(t, 2, g.Edges.Len())
	assert.Equal(t, []string{"read1", "read2", "read3"}, g.Nodes.Get(1).Reads())
	assert.Equal(t, []string{"read1", "read2"}, g.Nodes.Get(2).Reads())
	assert.InDelta(t, 9.0/7, g.Nodes.Get(1).Depth, 1e-9)
	assert.InDelta(t, 6.0/7, g.Nodes.Get(3).Depth, 1e-9)

	data, err := os.ReadFile(gfafile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "H", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "S\t1\tCCCCG\tGN:Z:[+g1,+g2,+g3]\tLN:i:5\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\tLR:Z:[read1,read2,read3]"))
	assert.Equal(t, "L\t1\t+\t2\t+\t0M", lines[4])
	assert.Equal(t, "L\t2\t+\t3\t-\t0M", lines[5])
}

func TestReadGraphBuilderShortReads(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 5
	p := genegraph.ReadGraphBuilder{
		Genefile:  "tests/genes.fq",
		Orderfile: "tests/orders.json",
		OutFile:   filepath.Join(t.TempDir(), "graph.gfa"),
		Config:    config,
	}
	assert.ErrorIs(t, p.Run(), genegraph.ErrTooFewGenes)

	p.Config.SkipShort = true
	require.NoError(t, p.Run())
	// read1 and read2 are one window from opposite strands
	require.Equal(t, 1, p.Graph.Nodes.Len())
	assert.Equal(t, 0, p.Graph.Edges.Len())
	assert.Equal(t, "[+g1,+g2,+g3,-g4,-g5]", p.Graph.Nodes.Get(1).Kmer.String())
	assert.Equal(t, []string{"read1", "read2"}, p.Graph.Nodes.Get(1).Reads())
}

func TestReadGraphBuilderInvalidConfig(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 0
	p := genegraph.ReadGraphBuilder{Config: config}
	assert.Error(t, p.Run())
}

func TestCoordGraphBuilderEmpty(t *testing.T) {
	dir := t.TempDir()
	kmerfile := filepath.Join(dir, "kmers.fasta")
	require.NoError(t, os.WriteFile(kmerfile, nil, 0644))
	p := genegraph.CoordGraphBuilder{
		Kmerfile: kmerfile,
		OutFile:  filepath.Join(dir, "graph.gfa"),
		Config:   genegraph.DefaultConfig(),
	}
	require.NoError(t, p.Run())
	assert.Equal(t, 0, p.Graph.Nodes.Len())
}

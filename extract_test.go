/*
 *  extract_test.go
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

// 40 bp plasmid with four 5 bp genes every 10 bp
var (
	plasmid = "AAAAAcccccCCCCCgggggGGGGGtttttTTTTTaaaaa"
	bed     = `# chrom	start	end	name	score	strand
p1	0	5	g1	0	+
p1	10	15	g2	0	-
p1	20	25	g3	0	+
p1	30	35	g4	0	+
`
)

func plasmidGenes(t *testing.T) []genegraph.GeneFeature {
	t.Helper()
	genes, chroms, err := genegraph.ReadGeneTable(strings.NewReader(bed))
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, chroms)
	return genes["p1"]
}

func headers(records []genegraph.KmerRecord) []string {
	var h []string
	for _, rec := range records {
		h = append(h, rec.Header())
	}
	return h
}

func TestReadGeneTable(t *testing.T) {
	genes := plasmidGenes(t)
	require.Len(t, genes, 4)
	assert.Equal(t, genegraph.GeneFeature{Chrom: "p1", Start: 10, End: 15, Name: "g2", Strand: '-'}, genes[1])

	_, _, err := genegraph.ReadGeneTable(strings.NewReader("p1\t0\t5\tg1\n"))
	assert.ErrorIs(t, err, genegraph.ErrMalformedRecord)
	_, _, err = genegraph.ReadGeneTable(strings.NewReader("p1\tzero\t5\tg1\t0\t+\n"))
	assert.ErrorIs(t, err, genegraph.ErrMalformedRecord)
}

func TestExtractWindowsCircular(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 3
	config.Class = "plasmid"
	records, err := genegraph.ExtractWindows("p1", []byte(plasmid), plasmidGenes(t), config)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"+g3,+g4,+g1|p1@21-5|25|plasmid|p1",
		"+g4,+g1,-g2|p1@31-15|25|plasmid|p1",
		"+g1,-g2,+g3|p1@1-25|25|plasmid|p1",
		"-g2,+g3,+g4|p1@11-35|25|plasmid|p1",
	}, headers(records))
	assert.Equal(t, "GGGGGtttttTTTTTaaaaaAAAAA", string(records[0].Sequence))
	assert.Equal(t, plasmid[0:25], string(records[2].Sequence))
}

func TestExtractWindowsLinear(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 3
	config.Circular = false
	config.IncludeGaps = false
	records, err := genegraph.ExtractWindows("p1", []byte(plasmid), plasmidGenes(t), config)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "+g1,-g2,+g3|p1@1-25|15|unknown|p1", records[0].Header())
	assert.Equal(t, "AAAAACCCCCGGGGG", string(records[0].Sequence))
}

func TestExtractWindowsTooFewGenes(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 5
	_, err := genegraph.ExtractWindows("p1", []byte(plasmid), plasmidGenes(t), config)
	assert.ErrorIs(t, err, genegraph.ErrTooFewGenes)

	config.K = 3
	_, err = genegraph.ExtractWindows("p1", []byte(plasmid[:20]), plasmidGenes(t), config)
	assert.ErrorIs(t, err, genegraph.ErrMalformedRecord)
}

// Windows around a circular reference link into a cycle whose overlaps
// match the shared spans, including across the origin
func TestExtractedWindowsGraph(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 3
	records, err := genegraph.ExtractWindows("p1", []byte(plasmid), plasmidGenes(t), config)
	require.NoError(t, err)

	g := genegraph.NewGraph(3, genegraph.CoordinateResolver{})
	w := g.Walk("p1")
	for _, rec := range records {
		locus := rec.Locus
		_, err := w.Add(genegraph.Observation{Window: rec.Window(), Locus: &locus})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.Equal(t, 4, g.Nodes.Len())
	require.Equal(t, 4, g.Edges.Len())
	for _, e := range g.Edges.All() {
		assert.Equal(t, "15M", e.Cigar())
	}
	assert.Equal(t, "4\t+\t1\t+\t15M", g.Edges.All()[3].String())
	assert.Equal(t, "p1@21-5", g.Nodes.Get(1).Locus.String())

	// Closing twice adds nothing
	require.NoError(t, w.Close())
	assert.Equal(t, 4, g.Edges.Len())

	// Every base of the plasmid is kept exactly once, the first window
	// loses its left end to the last one across the origin
	g.Trim()
	total := 0
	for _, n := range g.Nodes.All() {
		assert.Equal(t, 10, n.Length)
		total += n.Length
	}
	assert.Equal(t, len(plasmid), total)
	assert.Equal(t, plasmid[27:37], string(g.Nodes.Get(1).Sequence))
}

func TestLinearWindowsStayOpen(t *testing.T) {
	config := genegraph.DefaultConfig()
	config.K = 3
	config.Circular = false
	records, err := genegraph.ExtractWindows("p1", []byte(plasmid), plasmidGenes(t), config)
	require.NoError(t, err)

	g := genegraph.NewGraph(3, genegraph.CoordinateResolver{})
	w := g.Walk("p1")
	for _, rec := range records {
		locus := rec.Locus
		_, err := w.Add(genegraph.Observation{Window: rec.Window(), Locus: &locus})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	assert.Equal(t, 1, g.Edges.Len())
}

func TestWindowExtractorRun(t *testing.T) {
	dir := t.TempDir()
	fastafile := filepath.Join(dir, "ref.fasta")
	bedfile := filepath.Join(dir, "genes.bed")
	kmerfile := filepath.Join(dir, "kmers.fasta")
	require.NoError(t, os.WriteFile(fastafile, []byte(">p1 plasmid\n"+plasmid+"\n>p2\nACGT\n"), 0644))
	require.NoError(t, os.WriteFile(bedfile, []byte(bed), 0644))

	config := genegraph.DefaultConfig()
	config.K = 3
	p := genegraph.WindowExtractor{Fastafile: fastafile, Bedfile: bedfile, OutFile: kmerfile, Config: config}
	require.NoError(t, p.Run())
	assert.Equal(t, 4, p.Records)

	var records []genegraph.KmerRecord
	require.NoError(t, genegraph.ReadKmerRecords(kmerfile, func(rec genegraph.KmerRecord) error {
		records = append(records, rec)
		return nil
	}))
	require.Len(t, records, 4)
	assert.Equal(t, "+g4,+g1,-g2|p1@31-15|25|unknown|p1", records[1].Header())
	assert.Equal(t, "TTTTTaaaaaAAAAAcccccCCCCC", string(records[1].Sequence))

	c := genegraph.CoordGraphBuilder{Kmerfile: kmerfile, OutFile: filepath.Join(dir, "graph.gfa"), Config: config}
	require.NoError(t, c.Run())
	assert.Equal(t, 4, c.Graph.Nodes.Len())
	assert.Equal(t, 4, c.Graph.Edges.Len())
	total := 0
	for _, n := range c.Graph.Nodes.All() {
		total += n.Length
	}
	assert.Equal(t, len(plasmid), total)
}

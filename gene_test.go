/*
 *  gene_test.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/20/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanghaibao/genegraph"
)

func TestParseGeneCall(t *testing.T) {
	call, err := genegraph.ParseGeneCall("-gyrB")
	require.NoError(t, err)
	assert.Equal(t, genegraph.GeneCall{Name: "gyrB", Strand: '-'}, call)
	assert.Equal(t, "-gyrB", call.String())
	assert.Equal(t, "+gyrB", call.Flip().String())

	for _, bad := range []string{"", "+", "gyrB", "*gyrB"} {
		_, err := genegraph.ParseGeneCall(bad)
		assert.ErrorIs(t, err, genegraph.ErrInvalidCall, bad)
	}
}

func TestParseKmer(t *testing.T) {
	kmer := mustKmer(t, "+a, b,-c")
	assert.Equal(t, "[+a,+b,-c]", kmer.String())
	assert.Equal(t, "+a,+b,-c", kmer.Key())
	assert.Equal(t, "+a|+b|-c", kmer.Join("|"))

	_, err := genegraph.ParseKmer("+a,,+c")
	assert.ErrorIs(t, err, genegraph.ErrInvalidCall)
}

func TestKmerReverseComplement(t *testing.T) {
	kmer := mustKmer(t, "+a,+b,-c")
	rc := kmer.ReverseComplement()
	assert.Equal(t, "[+c,-b,-a]", rc.String())
	assert.True(t, rc.ReverseComplement().Equal(kmer))
	assert.False(t, rc.Equal(kmer))
	assert.False(t, kmer.Equal(kmer[:2]))
}

func TestGeneStoreOriented(t *testing.T) {
	s, ok := testGenes.Oriented(genegraph.GeneCall{Name: "g1", Strand: '-'})
	require.True(t, ok)
	assert.Equal(t, "GTTTT", string(s))
	s, ok = testGenes.Oriented(genegraph.GeneCall{Name: "g1", Strand: '+'})
	require.True(t, ok)
	assert.Equal(t, "AAAAC", string(s))
	_, ok = testGenes.Oriented(genegraph.GeneCall{Name: "gX", Strand: '+'})
	assert.False(t, ok)
}

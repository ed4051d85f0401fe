/*
 * Filename: /Users/bao/code/genegraph/priority_queue_test.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Tuesday, October 20th 2026, 2:40:11 pm
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanghaibao/genegraph"
)

func itemIDs(top []*genegraph.Item) []string {
	var s []string
	for _, item := range top {
		s = append(s, item.ID)
	}
	return s
}

func TestTopItems(t *testing.T) {
	items := []*genegraph.Item{
		{ID: "1", Priority: 0.5, Order: 0},
		{ID: "2", Priority: 2.0, Order: 1},
		{ID: "3", Priority: 1.0, Order: 2},
		{ID: "4", Priority: 2.0, Order: 3},
		{ID: "5", Priority: 0.1, Order: 4},
	}
	assert.Equal(t, []string{"2", "4", "3"}, itemIDs(genegraph.TopItems(items, 3)))
	assert.Equal(t, []string{"2", "4", "3", "1", "5"}, itemIDs(genegraph.TopItems(items, 10)))
	assert.Empty(t, genegraph.TopItems(items, 0))
}

func TestTopItemsTiesKeepInputOrder(t *testing.T) {
	var items []*genegraph.Item
	for i, id := range []string{"1", "2", "9", "10", "11"} {
		items = append(items, &genegraph.Item{ID: id, Priority: 1.0, Order: i})
	}
	assert.Equal(t, []string{"1", "2", "9"}, itemIDs(genegraph.TopItems(items, 3)))
}

func TestSummarizeDeepestMultiDigitIDs(t *testing.T) {
	var lines []string
	for _, id := range []string{"1", "2", "9", "10", "11", "12", "13"} {
		lines = append(lines, "S\t"+id+"\tACGT\tLN:i:4\tdp:f:1")
	}
	gfa, err := genegraph.ReadGFA(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	s := genegraph.Summarize(gfa)
	assert.Equal(t, []string{"1", "2", "9", "10", "11"}, itemIDs(s.Deepest))
}

/*
 *  stats.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/20/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/gonum/floats"
)

// Summarizer reports the content of a graph file
type Summarizer struct {
	Gfafile string
	Summary Summary
}

// Summary contains the headline numbers of a graph
type Summary struct {
	Segments    int
	Links       int
	TotalLength int
	MeanDepth   float64 // length-weighted
	Components  int
	Largest     int
	Deepest     []*Item // segments with the highest depth
}

// nDeepest is the number of segments listed by depth
const nDeepest = 5

// String outputs the summary as a two-column table
func (r Summary) String() string {
	deepest := make([]string, len(r.Deepest))
	for i, item := range r.Deepest {
		deepest[i] = fmt.Sprintf("%s:%.4g", item.ID, item.Priority)
	}
	return fmt.Sprintf("Segments\t%d\nLinks\t%d\nTotalLength\t%d\nMeanDepth\t%.6f\nComponents\t%d\nLargestComponent\t%d\nDeepestSegments\t%s\n",
		r.Segments, r.Links, r.TotalLength, r.MeanDepth, r.Components, r.Largest,
		strings.Join(deepest, ","))
}

// Summarize computes the headline numbers of a parsed GFA
func Summarize(gfa *GFA) Summary {
	s := Summary{Segments: len(gfa.Segments), Links: len(gfa.Links)}

	idx := map[string]int{}
	ids := make([]int, len(gfa.Segments))
	lengths := make([]float64, len(gfa.Segments))
	depths := make([]float64, len(gfa.Segments))
	items := make([]*Item, len(gfa.Segments))
	for i, seg := range gfa.Segments {
		idx[seg.ID] = i
		ids[i] = i
		length, ok := seg.Tags["LN"].(int)
		if !ok {
			length = len(seg.Sequence)
		}
		lengths[i] = float64(length)
		if dp, ok := seg.Tags["dp"].(float64); ok {
			depths[i] = dp
		}
		items[i] = &Item{ID: seg.ID, Priority: depths[i], Order: i}
		s.TotalLength += length
	}
	if total := floats.Sum(lengths); total > 0 {
		s.MeanDepth = floats.Dot(depths, lengths) / total
	}

	links := make([][2]int, 0, len(gfa.Links))
	for _, link := range gfa.Links {
		a, aok := idx[link.From]
		b, bok := idx[link.To]
		if !aok || !bok {
			log.Warningf("Link %s-%s refers to missing segments", link.From, link.To)
			continue
		}
		links = append(links, [2]int{a, b})
	}
	s.Deepest = TopItems(items, nDeepest)

	components := Components(ids, links)
	s.Components = len(components)
	if len(components) > 0 {
		s.Largest = len(components[0])
	}
	return s
}

// Run kicks off the Summarizer and prints the summary to w
func (r *Summarizer) Run(w io.Writer) error {
	gfa, err := ReadGFAFile(r.Gfafile)
	if err != nil {
		return err
	}
	r.Summary = Summarize(gfa)
	_, err = fmt.Fprint(w, r.Summary)
	return err
}

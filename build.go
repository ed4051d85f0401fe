/**
 * Filename: /Users/bao/code/genegraph/build.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Monday, October 19th 2026, 11:21:08 am
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"errors"
	"fmt"
)

// ReadGraphBuilder builds the graph from the gene orders found on reads
type ReadGraphBuilder struct {
	Genefile  string
	Orderfile string
	OutFile   string
	Config    Config
	Graph     *Graph
}

// CoordGraphBuilder builds the graph from located k-mer windows
type CoordGraphBuilder struct {
	Kmerfile string
	OutFile  string
	Config   Config
	Graph    *Graph
}

// AddGeneOrder slides a window of k genes along one read. Genes absent from
// the store are skipped with a warning.
func AddGeneOrder(g *Graph, genes GeneStore, order GeneOrder) error {
	calls := make(Kmer, 0, len(order.Calls))
	seqs := make([][]byte, 0, len(order.Calls))
	for _, call := range order.Calls {
		s, ok := genes.Oriented(call)
		if !ok {
			log.Warningf("Missing sequence for %s on `%s`", call.Name, order.Read)
			continue
		}
		calls = append(calls, call)
		seqs = append(seqs, s)
	}
	if len(calls) < g.K {
		return fmt.Errorf("%w: read `%s` has %d genes, k = %d",
			ErrTooFewGenes, order.Read, len(calls), g.K)
	}

	w := g.Walk(order.Read)
	for i := 0; i+g.K <= len(calls); i++ {
		obs := Observation{Window: Window{Genes: calls[i : i+g.K], Seqs: seqs[i : i+g.K]}}
		if _, err := w.Add(obs); err != nil {
			return err
		}
	}
	return nil
}

// Run kicks off the ReadGraphBuilder
func (r *ReadGraphBuilder) Run() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	genes, err := LoadGeneStore(r.Genefile)
	if err != nil {
		return err
	}

	g := NewGraph(r.Config.K, GeneResolver{Span: r.Config.SpanMode()})
	log.Noticef("Build %d-mer graph (span = %s)", g.K, r.Config.Span)
	nReads, nSkipped := 0, 0
	err = ReadGeneOrdersFile(r.Orderfile, func(order GeneOrder) error {
		nReads++
		err := AddGeneOrder(g, genes, order)
		if errors.Is(err, ErrTooFewGenes) && r.Config.SkipShort {
			log.Warning(err)
			nSkipped++
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	if nSkipped > 0 {
		log.Noticef("Skipped short reads: %s", Percentage(nSkipped, nReads))
	}

	g.Normalize()
	g.Report()
	r.Graph = g
	return WriteGFAFile(r.OutFile, g)
}

// Run kicks off the CoordGraphBuilder
func (r *CoordGraphBuilder) Run() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}

	var (
		g    *Graph
		w    *Walker
		read string
	)
	nRecords := 0
	err := ReadKmerRecords(r.Kmerfile, func(rec KmerRecord) error {
		if g == nil {
			if len(rec.Kmer) != r.Config.K {
				log.Noticef("Records carry %d-mers, k = %d ignored", len(rec.Kmer), r.Config.K)
			}
			g = NewGraph(len(rec.Kmer), CoordinateResolver{})
		}
		if w == nil || rec.Read != read {
			if w != nil {
				if err := w.Close(); err != nil {
					return err
				}
			}
			read = rec.Read
			w = g.Walk(read)
		}
		nRecords++
		locus := rec.Locus
		_, err := w.Add(Observation{Window: rec.Window(), Locus: &locus})
		return err
	})
	if err != nil {
		return err
	}
	if w != nil {
		if err := w.Close(); err != nil {
			return err
		}
	}
	if g == nil {
		log.Warningf("No k-mer records in `%s`", r.Kmerfile)
		g = NewGraph(r.Config.K, CoordinateResolver{})
	}
	log.Noticef("Imported %d k-mer records", nRecords)

	if r.Config.Trim {
		g.Trim()
	}
	g.Normalize()
	g.Report()
	r.Graph = g
	return WriteGFAFile(r.OutFile, g)
}

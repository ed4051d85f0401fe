/*
 *  genestore.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// GeneStore maps a gene name to its forward-strand nucleotide sequence
type GeneStore map[string][]byte

// Oriented returns the sequence of the gene call on its own strand
func (r GeneStore) Oriented(call GeneCall) ([]byte, bool) {
	s, ok := r[call.Name]
	if !ok {
		return nil, false
	}
	if call.Strand == Minus {
		return ReverseComplement(s), true
	}
	return s, true
}

// LoadGeneStore parses the FASTQ file of gene sequences. The gene name is
// the first word of the @ line.
func LoadGeneStore(fastqfile string) (GeneStore, error) {
	log.Noticef("Parse fastqfile `%s`", fastqfile)
	reader, err := fastx.NewDefaultReader(fastqfile)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	genes := GeneStore{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fastqfile, err)
		}
		name := strings.Fields(string(rec.Name))
		if len(name) == 0 {
			return nil, fmt.Errorf("%w: %s: record without name", ErrMalformedRecord, fastqfile)
		}
		// FASTA records have no quality line
		if len(rec.Seq.Qual) != len(rec.Seq.Seq) || len(rec.Seq.Seq) == 0 {
			return nil, fmt.Errorf("%w: %s: `%s` is not a FASTQ record",
				ErrMalformedRecord, fastqfile, name[0])
		}
		genes[name[0]] = append([]byte(nil), rec.Seq.Seq...)
	}
	log.Noticef("Loaded %d gene sequences", len(genes))
	return genes, nil
}

/**
 * Filename: /Users/bao/code/genegraph/extract.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Tuesday, October 20th 2026, 8:56:45 am
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
	"golang.org/x/sync/errgroup"
)

// GeneFeature is one row of the BED6 gene table
type GeneFeature struct {
	Chrom  string
	Start  int // 0-based
	End    int // exclusive
	Name   string
	Strand byte
}

// WindowExtractor cuts located k-mer windows out of a reference, given the
// gene coordinates on it
type WindowExtractor struct {
	Fastafile string
	Bedfile   string
	OutFile   string
	Config    Config
	Records   int
}

// ReadGeneTable parses a BED6 file of genes, ordered as in the file. The
// reference names are returned in the order first seen.
func ReadGeneTable(r io.Reader) (map[string][]GeneFeature, []string, error) {
	genes := map[string][]GeneFeature{}
	var chroms []string

	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	for i := 1; ; i++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		if len(rec) < 6 {
			return nil, nil, fmt.Errorf("%w: gene table row %d has %d columns, expect 6",
				ErrMalformedRecord, i, len(rec))
		}
		start, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: gene table row %d: start `%s`", ErrMalformedRecord, i, rec[1])
		}
		end, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: gene table row %d: end `%s`", ErrMalformedRecord, i, rec[2])
		}
		strand := byte(Plus)
		if rec[5] == "-" {
			strand = Minus
		}
		chrom := rec[0]
		if _, ok := genes[chrom]; !ok {
			chroms = append(chroms, chrom)
		}
		genes[chrom] = append(genes[chrom], GeneFeature{
			Chrom: chrom, Start: start, End: end, Name: rec[3], Strand: strand,
		})
	}
	return genes, chroms, nil
}

// ReadReference loads all sequences of a FASTA file keyed by the first word
// of their names
func ReadReference(fastafile string) (map[string][]byte, error) {
	reader, err := fastx.NewDefaultReader(fastafile)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	seqs := map[string][]byte{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fastafile, err)
		}
		name := strings.Fields(string(rec.Name))
		if len(name) == 0 {
			continue
		}
		seqs[name[0]] = append([]byte(nil), rec.Seq.Seq...)
	}
	return seqs, nil
}

// span returns sequence[start:end], wrapping around the origin when the
// interval crosses it
func span(sequence []byte, start, end int) []byte {
	if start <= end {
		return append([]byte(nil), sequence[start:end]...)
	}
	return concat(sequence[start:], sequence[:end])
}

// ExtractWindows emits one window per run of k consecutive genes. On a
// circular reference every gene starts a window, the runs that start
// within the last k-1 genes wrap around to the first genes.
func ExtractWindows(chrom string, sequence []byte, genes []GeneFeature, config Config) ([]KmerRecord, error) {
	k := config.K
	n := len(genes)
	if k > n {
		return nil, fmt.Errorf("%w: `%s` has %d genes, k = %d", ErrTooFewGenes, chrom, n, k)
	}
	for _, gene := range genes {
		if gene.Start < 0 || gene.End < 0 || gene.Start > len(sequence) || gene.End > len(sequence) {
			return nil, fmt.Errorf("%w: gene %s [%d, %d) is outside `%s` (%d bp)",
				ErrMalformedRecord, gene.Name, gene.Start, gene.End, chrom, len(sequence))
		}
	}

	first := 0
	if config.Circular {
		first = 1 - k
	}
	var records []KmerRecord
	for pos := first; pos <= n-k; pos++ {
		window := make([]GeneFeature, k)
		kmer := make(Kmer, k)
		for q := 0; q < k; q++ {
			window[q] = genes[((pos+q)%n+n)%n]
			kmer[q] = GeneCall{Name: window[q].Name, Strand: window[q].Strand}
		}
		start, end := window[0].Start, window[k-1].End

		var s []byte
		if config.IncludeGaps {
			s = span(sequence, start, end)
		} else {
			for _, gene := range window {
				s = append(s, span(sequence, gene.Start, gene.End)...)
			}
		}
		records = append(records, KmerRecord{
			Kmer: kmer,
			Locus: Locus{
				Accession: chrom,
				Start:     start + 1,
				End:       end,
				Length:    len(s),
				Class:     config.Class,
			},
			Read:     chrom,
			Sequence: s,
		})
	}
	return records, nil
}

// Run kicks off the WindowExtractor
func (r *WindowExtractor) Run() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	if !r.Config.IncludeGaps {
		log.Warning("Gaps between genes are excluded, overlaps from coordinates will be overestimated")
	}

	var (
		genes  map[string][]GeneFeature
		chroms []string
		seqs   map[string][]byte
		eg     errgroup.Group
	)
	eg.Go(func() error {
		fh, err := xopen.Ropen(r.Bedfile)
		if err != nil {
			return err
		}
		defer fh.Close()
		log.Noticef("Parse bedfile `%s`", r.Bedfile)
		genes, chroms, err = ReadGeneTable(fh)
		return err
	})
	eg.Go(func() error {
		log.Noticef("Parse fastafile `%s`", r.Fastafile)
		var err error
		seqs, err = ReadReference(r.Fastafile)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	var records []KmerRecord
	for _, chrom := range chroms {
		sequence, ok := seqs[chrom]
		if !ok {
			log.Warningf("Reference `%s` not found in `%s`, skipped", chrom, r.Fastafile)
			continue
		}
		recs, err := ExtractWindows(chrom, sequence, genes[chrom], r.Config)
		if err != nil {
			return err
		}
		records = append(records, recs...)
	}

	fw, err := xopen.Wopen(r.OutFile)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fw)
	for _, rec := range records {
		fmt.Fprintf(w, ">%s\n%s\n", rec.Header(), rec.Sequence)
	}
	if err := w.Flush(); err != nil {
		fw.Close()
		return err
	}
	if err := fw.Close(); err != nil {
		return err
	}
	r.Records = len(records)
	log.Noticef("A total of %d %d-mer windows from %d references written to `%s`",
		len(records), r.Config.K, len(chroms), r.OutFile)
	return nil
}

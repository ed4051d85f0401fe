/*
 *  records.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// KmerRecord is a located k-mer window, stored as a FASTA record with the
// header
//
//	>kmer|accession@start-end|length|class|read
//
// e.g. >dnaA,dnaN,recF|NZ_CP000001@1-3520|3520|chromosome|NZ_CP000001
type KmerRecord struct {
	Kmer     Kmer
	Locus    Locus
	Read     string
	Sequence []byte
}

// ParseKmerHeader parses the name line of a located k-mer window
func ParseKmerHeader(header string) (Kmer, Locus, string, error) {
	var locus Locus
	words := strings.Split(header, "|")
	if len(words) != 5 {
		return nil, locus, "", fmt.Errorf("%w: header `%s` has %d fields, expect 5",
			ErrMalformedRecord, header, len(words))
	}
	kmer, err := ParseKmer(words[0])
	if err != nil {
		return nil, locus, "", fmt.Errorf("header `%s`: %w", header, err)
	}

	at := strings.LastIndexByte(words[1], '@')
	if at < 0 {
		return nil, locus, "", fmt.Errorf("%w: position `%s` lacks @", ErrMalformedRecord, words[1])
	}
	locus.Accession = words[1][:at]
	coords := strings.SplitN(words[1][at+1:], "-", 2)
	if len(coords) != 2 {
		return nil, locus, "", fmt.Errorf("%w: position `%s` lacks start-end", ErrMalformedRecord, words[1])
	}
	if locus.Start, err = strconv.Atoi(coords[0]); err != nil {
		return nil, locus, "", fmt.Errorf("%w: start `%s`", ErrMalformedRecord, coords[0])
	}
	if locus.End, err = strconv.Atoi(coords[1]); err != nil {
		return nil, locus, "", fmt.Errorf("%w: end `%s`", ErrMalformedRecord, coords[1])
	}
	if locus.Length, err = strconv.Atoi(words[2]); err != nil {
		return nil, locus, "", fmt.Errorf("%w: length `%s`", ErrMalformedRecord, words[2])
	}
	locus.Class = words[3]
	return kmer, locus, words[4], nil
}

// Header formats the record name line, without the leading >
func (r KmerRecord) Header() string {
	return fmt.Sprintf("%s|%s|%d|%s|%s",
		r.Kmer.Join(","), r.Locus, r.Locus.Length, r.Locus.Class, r.Read)
}

// Window splits the record into a window. The sequence is not split per gene
// so it is kept whole on the first gene.
func (r KmerRecord) Window() Window {
	seqs := make([][]byte, len(r.Kmer))
	for i := range seqs {
		seqs[i] = []byte{}
	}
	if len(seqs) > 0 {
		seqs[0] = r.Sequence
	}
	return Window{Genes: r.Kmer, Seqs: seqs}
}

// ReadKmerRecords streams the located k-mer windows of a FASTA file
func ReadKmerRecords(fastafile string, fn func(KmerRecord) error) error {
	log.Noticef("Parse fastafile `%s`", fastafile)
	reader, err := fastx.NewDefaultReader(fastafile)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fastafile, err)
		}
		name := strings.Fields(string(rec.Name))
		if len(name) == 0 {
			return fmt.Errorf("%w: %s: record without name", ErrMalformedRecord, fastafile)
		}
		kmer, locus, read, err := ParseKmerHeader(name[0])
		if err != nil {
			return err
		}
		err = fn(KmerRecord{
			Kmer:     kmer,
			Locus:    locus,
			Read:     read,
			Sequence: append([]byte(nil), rec.Seq.Seq...),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

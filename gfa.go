/*
 *  gfa.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
	"github.com/shenwei356/xopen"
)

// Tag represents an optional field in a GFA line, e.g. LN:i:1200. The type
// of the value follows the type letter: i => int, f => float64, others string.
type Tag = interface{}

// GFASegment holds one S line
type GFASegment struct {
	ID       string
	Sequence string
	Tags     map[string]Tag
}

// GFALink holds one L line
type GFALink struct {
	From    string
	FromOri byte
	To      string
	ToOri   byte
	Overlap int // matched bases of the CIGAR overlap
}

// GFA is the parsed content of a segment/link graph file
type GFA struct {
	Segments []GFASegment
	Links    []GFALink
}

// GNLabel formats the k-mer of a node for the GN tag. Read-order graphs
// print the tuple, coordinate graphs the bare list.
func GNLabel(node *Node) string {
	if node.Locus != nil {
		return node.Kmer.Join(",")
	}
	return node.Kmer.String()
}

// formatDepth prints a depth value the shortest way, whole numbers keep a
// trailing .0 so the value reads as a float, e.g. 1.0
func formatDepth(depth float64) string {
	s := strconv.FormatFloat(depth, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// WriteGFA writes the header, segment and link lines of the graph
func WriteGFA(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "H")

	for _, node := range g.Nodes.All() {
		fields := []string{
			"S", strconv.Itoa(node.ID), string(node.Sequence),
			"GN:Z:" + GNLabel(node),
		}
		if node.Locus != nil {
			fields = append(fields, "SEG:Z:"+node.Locus.String())
		}
		fields = append(fields,
			"LN:i:"+strconv.Itoa(node.Length),
			"dp:f:"+formatDepth(node.Depth))
		if node.Locus != nil {
			fields = append(fields, "class:Z:"+node.Locus.Class)
		}
		fields = append(fields, "LR:Z:["+strings.Join(node.Reads(), ",")+"]")
		fmt.Fprintln(bw, strings.Join(fields, "\t"))
	}

	for _, e := range g.Edges.All() {
		fmt.Fprintf(bw, "L\t%s\n", e)
	}
	return bw.Flush()
}

// WriteGFAFile writes the graph to filename, gzipped if it ends with .gz
func WriteGFAFile(filename string, g *Graph) error {
	fw, err := xopen.Wopen(filename)
	if err != nil {
		return err
	}
	if err := WriteGFA(fw, g); err != nil {
		fw.Close()
		return err
	}
	if err := fw.Close(); err != nil {
		return err
	}
	log.Noticef("A total of %d segments and %d links written to `%s`",
		g.Nodes.Len(), g.Edges.Len(), filename)
	return nil
}

// parseTags parses the optional columns of a GFA line
func parseTags(words []string) map[string]Tag {
	tags := map[string]Tag{}
	for _, word := range words {
		tokens := strings.SplitN(word, ":", 3)
		if len(tokens) < 3 {
			continue
		}
		tagName := tokens[0]
		value := tokens[2]
		var tag Tag
		switch tokens[1] {
		case "i":
			tag, _ = strconv.Atoi(value)
		case "f":
			tag, _ = strconv.ParseFloat(value, 64)
		default:
			tag = value
		}
		tags[tagName] = tag
	}
	return tags
}

// parseOverlap reads the matched bases of a CIGAR overlap, * means 0
func parseOverlap(s string) (int, error) {
	if s == "*" || s == "" {
		return 0, nil
	}
	cigar, err := sam.ParseCigar([]byte(s))
	if err != nil {
		return 0, err
	}
	overlap := 0
	for _, op := range cigar {
		if op.Type() == sam.CigarMatch {
			overlap += op.Len()
		}
	}
	return overlap, nil
}

// ReadGFA parses the S and L lines of a GFA stream, other records are skipped
func ReadGFA(r io.Reader) (*GFA, error) {
	gfa := &GFA{}
	reader := bufio.NewReader(r)
	lineno := 0
	for {
		row, err := reader.ReadString('\n')
		lineno++
		row = strings.TrimRight(row, "\r\n")
		if row == "" && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		words := strings.Split(row, "\t")
		switch words[0] {
		case "S":
			if len(words) < 3 {
				return nil, fmt.Errorf("%w: line %d: S line with %d columns",
					ErrMalformedRecord, lineno, len(words))
			}
			gfa.Segments = append(gfa.Segments, GFASegment{
				ID:       words[1],
				Sequence: words[2],
				Tags:     parseTags(words[3:]),
			})
		case "L":
			if len(words) < 6 || len(words[2]) != 1 || len(words[4]) != 1 {
				return nil, fmt.Errorf("%w: line %d: bad L line", ErrMalformedRecord, lineno)
			}
			overlap, perr := parseOverlap(words[5])
			if perr != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, lineno, perr)
			}
			gfa.Links = append(gfa.Links, GFALink{
				From: words[1], FromOri: words[2][0],
				To: words[3], ToOri: words[4][0],
				Overlap: overlap,
			})
		}
		if err == io.EOF {
			break
		}
	}
	return gfa, nil
}

// ReadGFAFile parses a GFA file, possibly gzipped
func ReadGFAFile(filename string) (*GFA, error) {
	fh, err := xopen.Ropen(filename)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	log.Noticef("Parse gfafile `%s`", filename)
	return ReadGFA(fh)
}

/**
 * Filename: /Users/bao/code/genegraph/base.go
 * Path: /Users/bao/code/genegraph
 * Created Date: Monday, October 19th 2026, 9:12:40 am
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package genegraph

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/shenwei356/bio/seq"
)

const (
	// Version is the current version of genegraph
	Version = "0.1.0"
	// DefaultK is the number of consecutive genes per k-mer
	DefaultK = 5
	// Plus is the forward strand symbol
	Plus = '+'
	// Minus is the reverse strand symbol
	Minus = '-'
)

var (
	// ErrMalformedRecord is returned when an input record breaks its format
	ErrMalformedRecord = errors.New("malformed record")
	// ErrTooFewGenes is returned when a read or reference has fewer than k genes
	ErrTooFewGenes = errors.New("not enough gene records for a k-mer")
	// ErrNoOverlap is returned when two adjacent windows share no k-1 overlap
	ErrNoOverlap = errors.New("unexpected k-mer edge")
	// ErrInvalidCall is returned when a gene call carries no strand prefix
	ErrInvalidCall = errors.New("invalid gene call")
)

var log = logging.MustGetLogger("genegraph")
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Backend is the default stderr output
var Backend = logging.NewLogBackend(os.Stderr, "", 0)

// BackendFormatter contains the fancy debug formatter
var BackendFormatter = logging.NewBackendFormatter(Backend, format)

func init() {
	// Sequences come from annotations, IUPAC codes and soft-masking included
	seq.ValidateSeq = false
}

// RemoveExt returns the substring minus the extension
func RemoveExt(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

// Percentage prints a human readable message of the percentage
func Percentage(a, b int) string {
	if b == 0 {
		return fmt.Sprintf("%d of %d", a, b)
	}
	return fmt.Sprintf("%d of %d (%.1f %%)", a, b, float64(a)*100./float64(b))
}

// ReverseComplement returns the reverse complement of a nucleotide sequence
func ReverseComplement(s []byte) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	ss, err := seq.NewSeq(seq.DNAredundant, append([]byte(nil), s...))
	if err != nil {
		// Unknown letters are kept in place, only the order is reversed
		rc := make([]byte, len(s))
		for i, b := range s {
			rc[len(s)-1-i] = b
		}
		return rc
	}
	return ss.RevCom().Seq
}

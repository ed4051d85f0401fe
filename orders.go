/*
 *  orders.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
)

// GeneOrder is the ordered list of gene calls found on one read
type GeneOrder struct {
	Read  string
	Calls []GeneCall
}

// ReadGeneOrders streams a JSON object of read => ["+g1", "-g2", ...] and
// calls fn for every read in file order
func ReadGeneOrders(r io.Reader, fn func(GeneOrder) error) error {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		read, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expect read name, got %v", ErrMalformedRecord, tok)
		}
		var words []string
		if err := dec.Decode(&words); err != nil {
			return fmt.Errorf("%w: read `%s`: %v", ErrMalformedRecord, read, err)
		}
		order := GeneOrder{Read: read, Calls: make([]GeneCall, 0, len(words))}
		for _, word := range words {
			call, err := ParseGeneCall(word)
			if err != nil {
				return fmt.Errorf("read `%s`: %w", read, err)
			}
			order.Calls = append(order.Calls, call)
		}
		if err := fn(order); err != nil {
			return err
		}
	}
	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, delim json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != delim {
		return fmt.Errorf("%w: expect `%v`, got %v", ErrMalformedRecord, delim, tok)
	}
	return nil
}

// ReadGeneOrdersFile streams the gene orders in a JSON file, possibly gzipped
func ReadGeneOrdersFile(jsonfile string, fn func(GeneOrder) error) error {
	fh, err := xopen.Ropen(jsonfile)
	if err != nil {
		return err
	}
	defer fh.Close()
	log.Noticef("Parse jsonfile `%s`", jsonfile)
	return ReadGeneOrders(fh, fn)
}

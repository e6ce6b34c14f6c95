// Package signature turns an allele matrix into fixed-width signatures:
// one tuple of consecutive alleles per individual per non-overlapping
// locus window. It is the first step that turns raw genotype data into the
// vocabulary graphbuild uses to create nodes.
//
// Configuration follows the same Options/DefaultOptions/Validate shape used
// throughout this module for small, fixed parameter sets.
package signature

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for signature extraction.
var (
	// ErrBadBlockSize indicates Options.BlockSize is less than 1.
	ErrBadBlockSize = errors.New("signature: block size must be >= 1")

	// ErrRaggedIndividuals indicates individuals in individualMajor do not
	// all have the same number of loci.
	ErrRaggedIndividuals = errors.New("signature: individuals have differing loci counts")
)

// DefaultBlockSize is the signature window width used when Options is not
// overridden.
const DefaultBlockSize = 20

// Options configures signature extraction.
type Options struct {
	// BlockSize is the number of consecutive loci per signature window.
	BlockSize int
}

// DefaultOptions returns Options with BlockSize = DefaultBlockSize.
func DefaultOptions() Options {
	return Options{BlockSize: DefaultBlockSize}
}

// Validate reports ErrBadBlockSize if BlockSize < 1.
func (o Options) Validate() error {
	if o.BlockSize < 1 {
		return ErrBadBlockSize
	}
	return nil
}

// Signature is one individual's fixed-width allele tuple at one window.
type Signature struct {
	// Tokens holds the raw allele values for this signature.
	Tokens []int

	// Seq is the concatenation of Tokens rendered as digits, e.g. [1,0,0]
	// becomes "100". This is the string stored on the node the builder
	// creates for this signature.
	Seq string
}

// key returns a collision-free map key for Tokens (unlike Seq, which can
// collide across different token splits, e.g. [1,23] and [12,3]).
func (s Signature) key() string {
	var b strings.Builder
	for i, t := range s.Tokens {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// Windows is the result of extracting signatures from an allele matrix: for
// each window, the distinct signatures observed (in first-seen order), and
// for each individual, which signature (by index into that window's list)
// it carries.
type Windows struct {
	BlockSize int

	// Distinct[w] lists the distinct signatures seen in window w, in the
	// order they were first observed across individuals. The insertion
	// index within this slice is the "k" used in node naming
	// ("{k}:{w}-{w}").
	Distinct [][]Signature

	// Assignment[i][w] is the index into Distinct[w] of individual i's
	// signature at window w.
	Assignment [][]int
}

// NumWindows returns the number of signature windows.
func (w *Windows) NumWindows() int { return len(w.Distinct) }

// Extract computes Windows from individualMajor, an allele matrix already
// transposed to one row per individual (see the allele package). Windows
// are non-overlapping blocks of opts.BlockSize consecutive loci; any
// trailing loci shorter than a full block are discarded, so each
// individual yields exactly len(loci)/BlockSize windows (floor division).
//
// Complexity: O(individuals * loci)
func Extract(individualMajor [][]int, opts Options) (*Windows, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(individualMajor) == 0 {
		return &Windows{BlockSize: opts.BlockSize}, nil
	}

	lociCount := len(individualMajor[0])
	for _, indiv := range individualMajor {
		if len(indiv) != lociCount {
			return nil, ErrRaggedIndividuals
		}
	}

	numWindows := lociCount / opts.BlockSize
	w := &Windows{
		BlockSize:  opts.BlockSize,
		Distinct:   make([][]Signature, numWindows),
		Assignment: make([][]int, len(individualMajor)),
	}
	for i := range w.Assignment {
		w.Assignment[i] = make([]int, numWindows)
	}

	for wi := 0; wi < numWindows; wi++ {
		start := wi * opts.BlockSize
		seen := make(map[string]int)
		for i, indiv := range individualMajor {
			tokens := append([]int(nil), indiv[start:start+opts.BlockSize]...)
			sig := Signature{Tokens: tokens, Seq: renderSeq(tokens)}
			key := sig.key()
			k, ok := seen[key]
			if !ok {
				k = len(w.Distinct[wi])
				seen[key] = k
				w.Distinct[wi] = append(w.Distinct[wi], sig)
			}
			w.Assignment[i][wi] = k
		}
	}

	return w, nil
}

func renderSeq(tokens []int) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

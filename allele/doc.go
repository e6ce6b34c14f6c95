// Package allele loads the raw input to a pangenome graph build: a 2-D
// matrix of allele calls, one line per locus, whitespace-separated
// integer tokens per individual (spec.md section 6). The file is
// loci-major on disk; Load returns that matrix as read plus its
// individual-major transpose, since graphbuild and signature both
// operate per-individual.
//
// Grounded on the scanner-based, one-error-class-per-malformed-row
// reading style the pack's other genomics readers use (arvados-lightning
// slicenumpy.go): a bufio.Scanner line loop, strconv per token, a single
// sentinel for anything that doesn't parse.
package allele

import "errors"

// ErrRagged indicates a locus row has a different number of individuals
// than the first row read.
var ErrRagged = errors.New("allele: ragged row: inconsistent individual count")

// ErrBadToken indicates a row contained a token that does not parse as
// an integer.
var ErrBadToken = errors.New("allele: token is not an integer")

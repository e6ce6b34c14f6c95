package allele

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load parses r as a whitespace-separated integer allele matrix, one line
// per locus, columns as individuals. It returns the matrix as read
// (lociMajor) and its transpose (individualMajor), the shape every other
// package in this module consumes.
//
// Complexity: O(loci * individuals).
func Load(r io.Reader) (lociMajor, individualMajor [][]int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	individuals := -1
	for lineNum := 0; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if individuals == -1 {
			individuals = len(fields)
			individualMajor = make([][]int, individuals)
		} else if len(fields) != individuals {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, lineNum, len(fields), individuals)
		}

		row := make([]int, individuals)
		for col, tok := range fields {
			v, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return nil, nil, fmt.Errorf("%w: row %d col %d: %q", ErrBadToken, lineNum, col, tok)
			}
			row[col] = v
			individualMajor[col] = append(individualMajor[col], v)
		}
		lociMajor = append(lociMajor, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return lociMajor, individualMajor, nil
}

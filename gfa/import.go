package gfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/graph-genome/pangraph/core"
)

// Import reads GFA text from r into g, creating one node per S line and
// one zoom-0 path per P line. Segment references on a P line must match
// an S line seen anywhere earlier in the file (GFA does not require S
// before P, but this adapter does, in the order-sensitive spirit of
// append_node_to_path's create-nodes-as-you-go loop); an unresolved
// reference is ErrUnknownNode.
func Import(g *core.GraphGenome, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "H":
			continue
		case "S":
			if err := importSegment(g, fields); err != nil {
				return err
			}
		case "P":
			if err := importPath(g, fields); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unrecognized record type %q", ErrMalformed, fields[0])
		}
	}
	return scanner.Err()
}

func importSegment(g *core.GraphGenome, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: S line has %d fields, want 3", ErrMalformed, len(fields))
	}
	_, err := g.AddNode(fields[1], fields[2])
	if err != nil && err != core.ErrNodeExists {
		return err
	}
	return nil
}

func importPath(g *core.GraphGenome, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: P line has %d fields, want at least 3", ErrMalformed, len(fields))
	}
	p, err := g.CreatePath(fields[1], 0)
	if err != nil {
		return err
	}

	if fields[2] == "" {
		return nil
	}
	for _, tok := range strings.Split(fields[2], ",") {
		if len(tok) < 2 {
			return fmt.Errorf("%w: segment token %q missing strand", ErrMalformed, tok)
		}
		name, strand := tok[:len(tok)-1], core.Strand(tok[len(tok)-1])

		n, err := g.GetNode(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		if _, err := p.AppendTraversal(n, strand); err != nil {
			return err
		}
	}
	return nil
}

package gfa

import (
	"bufio"
	"fmt"
	"io"

	"github.com/graph-genome/pangraph/core"
)

// Export writes g's nodes and zoom's paths to w as GFA 1.0 text: one S line
// per non-NOTHING node in g (not only those zoom's paths traverse), one P
// line per path at zoom, in the format original_source/Graph/models.py's
// Node.to_gfa/Path.to_gfa describe - a comma-separated segment list and a
// comma-separated "*" per step in the overlap column, since this adapter
// never tracks per-junction CIGARs.
func Export(g *core.GraphGenome, zoom *core.ZoomLevel, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("H\tVN:Z:1.0\n"); err != nil {
		return err
	}

	for _, n := range g.Nodes() {
		if n.IsNothing() {
			continue
		}
		if _, err := fmt.Fprintf(bw, "S\t%s\t%s\n", n.Name, n.Seq); err != nil {
			return err
		}
	}

	for _, p := range zoom.Paths {
		if err := writePathLine(bw, p); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writePathLine(bw *bufio.Writer, p *core.Path) error {
	if _, err := fmt.Fprintf(bw, "P\t%s\t", p.Accession); err != nil {
		return err
	}
	for i, t := range p.Traversals {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%s%c", t.Node.Name, byte(t.Strand)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\t'); err != nil {
		return err
	}
	for i := range p.Traversals {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('*'); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}

// Package pangraph builds and summarizes pangenome graphs: many
// individuals' genomes represented as paths over a shared vocabulary of
// sequence nodes.
//
// Subpackages, in the order data flows through them:
//
//	allele/     — parses the whitespace-separated allele matrix (section 6)
//	signature/  — turns an individual's alleles into fixed-width windows
//	core/       — the in-memory graph model: GraphGenome, Node, Path, ZoomLevel
//	graphbuild/ — builds a graph and its zoom-0 paths from signatures
//	simplify/   — merges, prunes, and splits nodes to compact the graph
//	dagify/     — reconciles paths into a linear profile and slices it
//	zoom/       — carries a simplified path set up to the next zoom level
//	gfa/        — exports/imports the graph as GFA text
//	report/     — specimen-support summary statistics and plots
package pangraph

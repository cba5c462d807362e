// SPDX-License-Identifier: MIT

// Package newick models phylogenetic trees and reads and writes them in
// Newick format.
//
//	((A:0.5,B:0.5):1,C:1.5);
//
// Write renders branch lengths with a caller-chosen number of significant
// digits; Parse accepts quoted labels ('a b'), nested clades and optional
// lengths. Leaves lists leaf labels in left-to-right order.
package newick

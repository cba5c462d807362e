// SPDX-License-Identifier: MIT
package newick

import (
	"strconv"
	"strings"
)

// specialChars must be quoted inside a label.
const specialChars = "()[]':;, \t\n"

// Write renders root as a Newick string terminated by ';'.
// Lengths use precision significant digits ('g' format); precision < 1 is
// treated as 1.
//
// Errors: ErrNilTree.
// Complexity: O(nodes).
func Write(root *Node, precision int) (string, error) {
	if root == nil {
		return "", ErrNilTree
	}
	if precision < 1 {
		precision = 1
	}
	var sb strings.Builder
	writeNode(&sb, root, precision)
	sb.WriteByte(';')

	return sb.String(), nil
}

func writeNode(sb *strings.Builder, n *Node, precision int) {
	if !n.IsLeaf() {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeNode(sb, c, precision)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(quoteLabel(n.Name, n.IsLeaf()))
	if n.HasLength {
		sb.WriteByte(':')
		sb.WriteString(FormatLength(n.Length, precision))
	}
}

// FormatLength formats a branch length with precision significant digits.
// Negative zero is printed as 0.
func FormatLength(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'g', precision, 64)
}

// quoteLabel wraps a label in single quotes when it holds special characters,
// doubling embedded quotes. An empty leaf label is written as ''.
func quoteLabel(s string, leaf bool) string {
	if s == "" {
		if leaf {
			return "''"
		}

		return s
	}
	if !strings.ContainsAny(s, specialChars) {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

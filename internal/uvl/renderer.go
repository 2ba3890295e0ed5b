package uvl

import (
	"strings"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// Group feature names under the root, in render order.
const (
	AlgorithmGroup   = "Algorithm"
	BackendGroup     = "Backend"
	IntegrationGroup = "IntegrationModel"
)

// Render builds the complete UVL document for a root feature and its
// classified children.
//
// The features block always opens the document. Group subtrees are
// emitted only when non-empty, NFRs follow as direct children of the
// root, and a constraints block is appended after a blank line when
// Constraints reports any.
//
// Parameters:
//   - rootFeature: Identifier for the root of the tree (already
//     formatted, never empty)
//   - features: Classified features, each category in final order
//
// Returns:
//   - UVL document text; ends with a newline unless a constraints
//     block closes the document
func Render(rootFeature string, features istar2uvl.Classification) string {
	lines := []string{
		"features {",
		"  " + rootFeature + " {",
	}

	lines = appendGroup(lines, AlgorithmGroup, features.Algorithms)
	lines = appendGroup(lines, BackendGroup, features.Backends)
	lines = appendGroup(lines, IntegrationGroup, features.Integrations)

	for _, nfr := range features.NFRs {
		lines = append(lines, "    "+nfr)
	}

	lines = append(lines, "  }", "}", "")

	if constraints := Constraints(features); len(constraints) > 0 {
		lines = append(lines, "constraints {")
		for _, constraint := range constraints {
			lines = append(lines, "  "+constraint)
		}
		lines = append(lines, "}")
	}

	return strings.Join(lines, "\n")
}

// appendGroup emits a named group subtree with its children, or nothing
// when the group has no members.
func appendGroup(lines []string, group string, children []string) []string {
	if len(children) == 0 {
		return lines
	}

	lines = append(lines, "    "+group+" {")
	for _, child := range children {
		lines = append(lines, "      "+child)
	}
	return append(lines, "    }")
}

// Constraints returns the cross-tree constraint for each algorithm,
// in algorithm order. The model carries constraints only when it has
// at least one algorithm and the Precision NFR; otherwise nil.
func Constraints(features istar2uvl.Classification) []string {
	if len(features.Algorithms) == 0 || !hasPrecision(features.NFRs) {
		return nil
	}

	constraints := make([]string, 0, len(features.Algorithms))
	for _, algorithm := range features.Algorithms {
		constraints = append(constraints, algorithm+" requires "+istar2uvl.PrecisionFeature)
	}
	return constraints
}

func hasPrecision(nfrs []string) bool {
	for _, nfr := range nfrs {
		if nfr == istar2uvl.PrecisionFeature {
			return true
		}
	}
	return false
}

// Package classify matches diagram objects against the category
// dictionaries and selects the root goal.
package classify

import (
	"sort"
	"strings"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// Features scans every object's normalized label against the category
// dictionaries and returns the matched feature names per category.
//
// A dictionary key matches when it occurs as a substring of the label:
// "aes" matches "use aes encryption". Every object contributes to every
// category, regardless of its kind. Results are deduplicated and sorted
// lexicographically.
//
// When no backend keyword matched, DefaultBackendFeature is substituted
// provided the backend dictionary itself declares that feature; the
// integration category works the same way with DefaultIntegrationFeature.
func Features(objects []istar2uvl.DiagramObject, tables istar2uvl.MappingSet) istar2uvl.Classification {
	algorithms := match(objects, tables[istar2uvl.CategoryAlgorithms])
	nfrs := match(objects, tables[istar2uvl.CategoryNFRs])
	backends := match(objects, tables[istar2uvl.CategoryBackend])
	integrations := match(objects, tables[istar2uvl.CategoryIntegration])

	applyDefault(backends, tables[istar2uvl.CategoryBackend], istar2uvl.DefaultBackendFeature)
	applyDefault(integrations, tables[istar2uvl.CategoryIntegration], istar2uvl.DefaultIntegrationFeature)

	return istar2uvl.Classification{
		Algorithms:   sorted(algorithms),
		NFRs:         sorted(nfrs),
		Backends:     sorted(backends),
		Integrations: sorted(integrations),
	}
}

// SelectRootLabel returns the label of the first goal object carrying a
// non-empty label, in document order. The boolean reports whether the
// diagram supplied the label; when false, fallback is returned instead.
func SelectRootLabel(objects []istar2uvl.DiagramObject, fallback string) (string, bool) {
	for _, obj := range objects {
		if obj.Kind == istar2uvl.KindGoal && obj.RawLabel != "" {
			return obj.RawLabel, true
		}
	}
	return fallback, false
}

func match(objects []istar2uvl.DiagramObject, table istar2uvl.MappingTable) map[string]struct{} {
	features := make(map[string]struct{})
	for _, obj := range objects {
		for key, feature := range table {
			if key == "" {
				continue
			}
			if strings.Contains(obj.NormalizedLabel, key) {
				features[feature] = struct{}{}
			}
		}
	}
	return features
}

func applyDefault(matched map[string]struct{}, table istar2uvl.MappingTable, feature string) {
	if len(matched) > 0 {
		return
	}
	if table.HasFeature(feature) {
		matched[feature] = struct{}{}
	}
}

func sorted(set map[string]struct{}) []string {
	result := make([]string, 0, len(set))
	for feature := range set {
		result = append(result, feature)
	}
	sort.Strings(result)
	return result
}

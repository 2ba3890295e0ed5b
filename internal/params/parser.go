package params

import (
	"fmt"
	"strings"

	"github.com/uvl-tools/istar2uvl/internal/label"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// ParseMappingOverrides converts repeated "category:key=Feature" flag
// values into a mapping set keyed by category. Keys are normalized the
// same way dictionary file keys are, so an override shadows the file
// entry it targets; feature names are trimmed but kept verbatim.
//
// Example:
//
//	overrides, err := ParseMappingOverrides([]string{"algorithms:Monte Carlo=MonteCarlo"})
//	// Returns: {"algorithms": {"monte carlo": "MonteCarlo"}}
func ParseMappingOverrides(pairs []string) (istar2uvl.MappingSet, error) {
	result := make(istar2uvl.MappingSet)

	for _, pair := range pairs {
		category, entry, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("mapping %q is not in category:key=Feature format (example: --map algorithms:monte carlo=MonteCarlo)", pair)
		}

		category = strings.TrimSpace(category)
		if !istar2uvl.IsCategory(category) {
			return nil, fmt.Errorf("unknown category %q in mapping %q (valid categories: %s)",
				category, pair, strings.Join(istar2uvl.Categories(), ", "))
		}

		rawKey, feature, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("mapping %q is not in category:key=Feature format (example: --map algorithms:monte carlo=MonteCarlo)", pair)
		}

		key := label.Normalize(rawKey)
		if key == "" {
			return nil, fmt.Errorf("mapping has empty key: %q", pair)
		}

		feature = strings.TrimSpace(feature)
		if feature == "" {
			return nil, fmt.Errorf("mapping has empty feature name: %q", pair)
		}

		table := result[category]
		if table == nil {
			table = make(istar2uvl.MappingTable)
			result[category] = table
		}
		table[key] = feature
	}

	return result, nil
}

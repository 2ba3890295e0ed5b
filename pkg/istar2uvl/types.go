package istar2uvl

import (
	"errors"
	"fmt"
)

// DiagramObject is one <object> element extracted from an i* diagram,
// in document order.
type DiagramObject struct {
	// Kind is the lower-cased type attribute ("goal", "task", "softgoal", ...).
	// Empty when the element carries no type attribute.
	Kind string

	// RawLabel is the label attribute after HTML entity decoding,
	// tag stripping and trimming.
	RawLabel string

	// NormalizedLabel is RawLabel lower-cased, accent-stripped and
	// whitespace-collapsed. Keyword matching runs against this form.
	NormalizedLabel string
}

// MappingTable maps normalized keywords to UVL feature names for one category.
type MappingTable map[string]string

// HasFeature reports whether any entry of the table maps to the given
// feature name. The default-value rule only substitutes features the
// table itself declares.
func (t MappingTable) HasFeature(feature string) bool {
	for _, f := range t {
		if f == feature {
			return true
		}
	}
	return false
}

// MappingSet groups the per-category dictionaries by category name.
// A category whose source file was missing maps to an empty table,
// never to nil.
type MappingSet map[string]MappingTable

// Classification holds the feature names matched from a diagram,
// deduplicated and sorted lexicographically per category.
type Classification struct {
	Algorithms   []string
	NFRs         []string
	Backends     []string
	Integrations []string
}

// IsCategory reports whether name is one of the fixed mapping categories.
func IsCategory(name string) bool {
	switch name {
	case CategoryAlgorithms, CategoryNFRs, CategoryBackend, CategoryIntegration:
		return true
	}
	return false
}

// GenerateConfig contains all parameters needed for a conversion run.
type GenerateConfig struct {
	// DiagramPath is the i* diagram XML file to convert
	DiagramPath string

	// OutputPath is the UVL file to write
	OutputPath string

	// ConfigDir is the directory holding the category dictionaries.
	// Empty selects DefaultConfigDir.
	ConfigDir string

	// RootLabel is the fallback root label used when the diagram has no
	// goal object with a non-empty label
	RootLabel string

	// RequireRootGoal makes a missing root goal fatal instead of falling
	// back to RootLabel
	RequireRootGoal bool

	// Overrides are ad-hoc mapping entries merged over the loaded
	// dictionaries, keyed by category
	Overrides MappingSet

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
// An empty ConfigDir is replaced with DefaultConfigDir.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.DiagramPath == "" {
		errs = append(errs, fmt.Errorf("DiagramPath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir
	}

	for category := range c.Overrides {
		if !IsCategory(category) {
			errs = append(errs, fmt.Errorf("unknown mapping category %q: %w", category, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// InspectConfig contains all parameters needed for a dry-run analysis.
// The analysis runs the full conversion pass without writing output.
type InspectConfig struct {
	// DiagramPath is the i* diagram XML file to analyze
	DiagramPath string

	// ConfigDir is the directory holding the category dictionaries.
	// Empty selects DefaultConfigDir.
	ConfigDir string

	// RootLabel is the fallback root label used when the diagram has no
	// goal object with a non-empty label
	RootLabel string

	// RequireRootGoal makes a missing root goal fatal instead of falling
	// back to RootLabel
	RequireRootGoal bool

	// Overrides are ad-hoc mapping entries merged over the loaded
	// dictionaries, keyed by category
	Overrides MappingSet

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the InspectConfig has all required fields and valid values.
// An empty ConfigDir is replaced with DefaultConfigDir.
func (c *InspectConfig) Validate() error {
	var errs []error

	if c.DiagramPath == "" {
		errs = append(errs, fmt.Errorf("DiagramPath is required: %w", ErrInvalidConfig))
	}

	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir
	}

	for category := range c.Overrides {
		if !IsCategory(category) {
			errs = append(errs, fmt.Errorf("unknown mapping category %q: %w", category, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Report summarizes one conversion pass. Generate and Inspect produce the
// same report; only Generate fills OutputPath.
type Report struct {
	// DiagramPath is the diagram that was analyzed
	DiagramPath string

	// ObjectCount is the number of <object> elements found
	ObjectCount int

	// KindCounts tallies the objects per type attribute
	KindCounts map[string]int

	// RootLabel is the label the root feature was derived from
	RootLabel string

	// RootFeature is the PascalCase root feature identifier
	RootFeature string

	// RootFromDiagram reports whether the root label came from a goal
	// object rather than from the configured fallback
	RootFromDiagram bool

	// Classification holds the matched features per category
	Classification Classification

	// TableSizes counts the loaded dictionary entries per category,
	// override entries included
	TableSizes map[string]int

	// Constraints are the requires-lines of the model, empty when the
	// constraints block is absent
	Constraints []string

	// OutputPath is the UVL file written by Generate, empty for Inspect
	OutputPath string
}

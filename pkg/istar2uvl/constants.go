package istar2uvl

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Conversion completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitDiagramError    = 11 // Diagram XML could not be parsed
	ExitRootGoalMissing = 12 // No root goal in the diagram (strict mode)
	ExitOutputError     = 13 // Writing the UVL output file failed
)

// Mapping categories. Each category is backed by one dictionary file
// named <category>.txt inside the configuration directory.
const (
	CategoryAlgorithms  = "algorithms"
	CategoryNFRs        = "nfrs"
	CategoryBackend     = "backend"
	CategoryIntegration = "integration"
)

// Categories returns the fixed category set in load order.
// The slice is freshly allocated on every call.
func Categories() []string {
	return []string{CategoryAlgorithms, CategoryNFRs, CategoryBackend, CategoryIntegration}
}

const (
	// DefaultConfigDir is the configuration directory used when none is given.
	DefaultConfigDir = "config"

	// MappingFileExtension is the file extension of category dictionaries.
	MappingFileExtension = ".txt"

	// MappingDelimiter separates a dictionary key from its feature name.
	MappingDelimiter = "=>"

	// KindGoal is the diagram object type whose label names the root feature.
	KindGoal = "goal"

	// DefaultRootFeature is the root feature identifier produced when the
	// diagram has no goal object and no fallback label is configured.
	DefaultRootFeature = "RootGoal"

	// DefaultBackendFeature is substituted when no backend keyword matched,
	// provided the backend dictionary itself declares this feature.
	DefaultBackendFeature = "Hardware"

	// DefaultIntegrationFeature is substituted when no integration keyword
	// matched, provided the integration dictionary itself declares this feature.
	DefaultIntegrationFeature = "Middleware"

	// PrecisionFeature gates the constraints block: each matched algorithm
	// requires this feature when it appears among the matched NFRs.
	PrecisionFeature = "Precision"
)

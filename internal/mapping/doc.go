// Package mapping loads the keyword dictionaries behind feature
// classification.
//
// # Dictionary Format
//
// Each category (algorithms, nfrs, backend, integration) is one plain-text
// file in the configuration directory, for example config/algorithms.txt:
//
//	# Optimization algorithms
//	simulated annealing => SimulatedAnnealing
//	genetic              => GeneticAlgorithm
//	aes                  => AES
//
// The key left of => is matched as a substring against normalized diagram
// labels; the feature right of it is emitted verbatim into the UVL model.
//
// # Tolerance
//
// Dictionaries are optional configuration: a missing file, a missing
// directory or a malformed line never aborts a conversion. Problems are
// reported through the verbose log and the affected line or category is
// skipped, leaving the remaining categories fully usable.
package mapping

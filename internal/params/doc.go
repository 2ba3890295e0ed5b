// Package params parses ad-hoc mapping overrides passed on the command line.
//
// Overrides arrive via repeated --map flags and take precedence over
// entries loaded from the configuration directory.
//
// # Override Format
//
// Each flag value names a category, a label fragment and the feature it
// maps to:
//
//	--map algorithms:monte carlo=MonteCarlo
//	--map nfrs:encrypt=Security
//
// The key portion is normalized exactly like dictionary file keys
// (lower-cased, diacritics stripped, whitespace collapsed), so an
// override whose key is "Monte Carlo" shadows a file entry whose key
// normalizes to "monte carlo". The feature portion is kept verbatim
// apart from surrounding whitespace.
package params

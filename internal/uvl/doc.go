// Package uvl renders classified i* features as a UVL feature model.
//
// # Overview
//
// UVL (Universal Variability Language) describes a feature tree plus
// optional cross-tree constraints. This package produces the textual
// form consumed by UVL tooling from an already-classified set of
// features; it performs no matching or normalization of its own.
//
// # Model Shape
//
// The rendered tree places three fixed groups under the root feature,
// each emitted only when it has members, followed by the flat NFR
// features:
//
//	features {
//	  ProteinFolding {
//	    Algorithm {
//	      MonteCarlo
//	    }
//	    Backend {
//	      Hardware
//	    }
//	    IntegrationModel {
//	      Middleware
//	    }
//	    Precision
//	  }
//	}
//
//	constraints {
//	  MonteCarlo requires Precision
//	}
//
// The constraints block appears only when the model has at least one
// algorithm and the Precision NFR; every algorithm then requires
// Precision. A blank line separates the two blocks.
//
// # Determinism
//
// Rendering is a pure function of its inputs. Feature ordering is the
// caller's responsibility; the classifier sorts each category before
// handing it over, so identical diagrams and dictionaries always yield
// byte-identical output.
package uvl

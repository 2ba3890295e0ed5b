package classify

import (
	"reflect"
	"testing"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

func obj(kind, label, normalized string) istar2uvl.DiagramObject {
	return istar2uvl.DiagramObject{Kind: kind, RawLabel: label, NormalizedLabel: normalized}
}

func TestFeatures_SubstringMatching(t *testing.T) {
	objects := []istar2uvl.DiagramObject{
		obj("task", "Use AES encryption", "use aes encryption"),
	}
	tables := istar2uvl.MappingSet{
		istar2uvl.CategoryAlgorithms: {
			"aes": "AES",
			"rsa": "RSA",
		},
	}

	got := Features(objects, tables)

	// "aes" is contained in the label, "rsa" is not
	if !reflect.DeepEqual(got.Algorithms, []string{"AES"}) {
		t.Errorf("Algorithms = %v, want [AES]", got.Algorithms)
	}
}

func TestFeatures_DeduplicatesAndSorts(t *testing.T) {
	objects := []istar2uvl.DiagramObject{
		obj("task", "simulated annealing first", "simulated annealing first"),
		obj("task", "annealing again", "annealing again"),
		obj("task", "genetic algorithm", "genetic algorithm"),
	}
	tables := istar2uvl.MappingSet{
		istar2uvl.CategoryAlgorithms: {
			"annealing": "SimulatedAnnealing",
			"genetic":   "GeneticAlgorithm",
		},
	}

	got := Features(objects, tables)

	want := []string{"GeneticAlgorithm", "SimulatedAnnealing"}
	if !reflect.DeepEqual(got.Algorithms, want) {
		t.Errorf("Algorithms = %v, want %v", got.Algorithms, want)
	}
}

func TestFeatures_KindDoesNotRestrictMatching(t *testing.T) {
	// A resource object's label still feeds every category
	objects := []istar2uvl.DiagramObject{
		obj("resource", "GPU cluster", "gpu cluster"),
	}
	tables := istar2uvl.MappingSet{
		istar2uvl.CategoryBackend: {"gpu": "Hardware"},
	}

	got := Features(objects, tables)

	if !reflect.DeepEqual(got.Backends, []string{"Hardware"}) {
		t.Errorf("Backends = %v, want [Hardware]", got.Backends)
	}
}

func TestFeatures_BackendDefault(t *testing.T) {
	tests := []struct {
		name    string
		objects []istar2uvl.DiagramObject
		table   istar2uvl.MappingTable
		want    []string
	}{
		{
			name:    "No match and Hardware declared",
			objects: []istar2uvl.DiagramObject{obj("task", "nothing relevant", "nothing relevant")},
			table:   istar2uvl.MappingTable{"gpu": "Hardware", "cloud": "Cloud"},
			want:    []string{"Hardware"},
		},
		{
			name:    "No match and Hardware not declared",
			objects: []istar2uvl.DiagramObject{obj("task", "nothing relevant", "nothing relevant")},
			table:   istar2uvl.MappingTable{"cloud": "Cloud"},
			want:    []string{},
		},
		{
			name:    "Match suppresses the default",
			objects: []istar2uvl.DiagramObject{obj("task", "cloud deployment", "cloud deployment")},
			table:   istar2uvl.MappingTable{"gpu": "Hardware", "cloud": "Cloud"},
			want:    []string{"Cloud"},
		},
		{
			name:    "Empty table yields nothing",
			objects: []istar2uvl.DiagramObject{obj("task", "nothing relevant", "nothing relevant")},
			table:   istar2uvl.MappingTable{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Features(tt.objects, istar2uvl.MappingSet{istar2uvl.CategoryBackend: tt.table})
			if !reflect.DeepEqual(got.Backends, tt.want) {
				t.Errorf("Backends = %v, want %v", got.Backends, tt.want)
			}
		})
	}
}

func TestFeatures_IntegrationDefault(t *testing.T) {
	objects := []istar2uvl.DiagramObject{obj("task", "nothing relevant", "nothing relevant")}
	tables := istar2uvl.MappingSet{
		istar2uvl.CategoryIntegration: {"rest": "API", "broker": "Middleware"},
	}

	got := Features(objects, tables)

	if !reflect.DeepEqual(got.Integrations, []string{"Middleware"}) {
		t.Errorf("Integrations = %v, want [Middleware]", got.Integrations)
	}
}

func TestFeatures_MissingTables(t *testing.T) {
	objects := []istar2uvl.DiagramObject{
		obj("task", "use aes encryption", "use aes encryption"),
	}

	got := Features(objects, istar2uvl.MappingSet{})

	if len(got.Algorithms) != 0 || len(got.NFRs) != 0 || len(got.Backends) != 0 || len(got.Integrations) != 0 {
		t.Errorf("Features with no tables = %+v, want all empty", got)
	}
}

func TestFeatures_EmptyLabelDoesNotMatch(t *testing.T) {
	objects := []istar2uvl.DiagramObject{
		obj("task", "", ""),
	}
	tables := istar2uvl.MappingSet{
		istar2uvl.CategoryAlgorithms: {"aes": "AES"},
	}

	got := Features(objects, tables)

	if len(got.Algorithms) != 0 {
		t.Errorf("Algorithms = %v, want empty", got.Algorithms)
	}
}

func TestSelectRootLabel(t *testing.T) {
	tests := []struct {
		name     string
		objects  []istar2uvl.DiagramObject
		fallback string
		want     string
		fromDiag bool
	}{
		{
			name: "First goal wins",
			objects: []istar2uvl.DiagramObject{
				obj("task", "Setup", "setup"),
				obj("goal", "Protein Folding", "protein folding"),
				obj("goal", "Secondary", "secondary"),
			},
			fallback: "Fallback",
			want:     "Protein Folding",
			fromDiag: true,
		},
		{
			name: "Goal with empty label is skipped",
			objects: []istar2uvl.DiagramObject{
				obj("goal", "", ""),
				obj("goal", "Real Goal", "real goal"),
			},
			fallback: "Fallback",
			want:     "Real Goal",
			fromDiag: true,
		},
		{
			name: "No goals falls back",
			objects: []istar2uvl.DiagramObject{
				obj("task", "Setup", "setup"),
				obj("softgoal", "Precision", "precision"),
			},
			fallback: "Fallback",
			want:     "Fallback",
			fromDiag: false,
		},
		{
			name:     "Empty diagram falls back to empty",
			objects:  nil,
			fallback: "",
			want:     "",
			fromDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fromDiag := SelectRootLabel(tt.objects, tt.fallback)
			if got != tt.want || fromDiag != tt.fromDiag {
				t.Errorf("SelectRootLabel() = (%q, %v), want (%q, %v)", got, fromDiag, tt.want, tt.fromDiag)
			}
		})
	}
}

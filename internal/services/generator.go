package services

import (
	"fmt"
	"os"

	"github.com/uvl-tools/istar2uvl/internal/classify"
	"github.com/uvl-tools/istar2uvl/internal/diagram"
	"github.com/uvl-tools/istar2uvl/internal/filesystem"
	"github.com/uvl-tools/istar2uvl/internal/label"
	"github.com/uvl-tools/istar2uvl/internal/mapping"
	"github.com/uvl-tools/istar2uvl/internal/uvl"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// GeneratorService turns i* goal-model diagrams into UVL feature models.
// Generate and Inspect run the identical analysis pass; only Generate
// writes the rendered document.
//
// Thread-Safety: safe for concurrent calls. The service holds no
// per-run state.
type GeneratorService struct {
	fsProvider filesystem.FileSystemProvider
	store      *mapping.Store
	logger     istar2uvl.Logger
}

// NewGeneratorService creates a new GeneratorService backed by the OS
// filesystem.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: these are programmer errors that should
//     fail loudly at application startup, not during a conversion run.
//   - Returns errors for runtime conditions: unreadable diagrams, malformed
//     XML and unwritable outputs are reported to the caller.
func NewGeneratorService(logger istar2uvl.Logger) *GeneratorService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	fsProvider := filesystem.NewOSFileSystem()
	return &GeneratorService{
		fsProvider: fsProvider,
		store:      mapping.NewStoreWithFS(logger, fsProvider),
		logger:     logger,
	}
}

// NewGeneratorServiceWithFS creates a GeneratorService reading the diagram
// and the dictionaries through the given filesystem provider. Output still
// goes to the OS filesystem.
func NewGeneratorServiceWithFS(logger istar2uvl.Logger, fsProvider filesystem.FileSystemProvider) *GeneratorService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &GeneratorService{
		fsProvider: fsProvider,
		store:      mapping.NewStoreWithFS(logger, fsProvider),
		logger:     logger,
	}
}

// Generate runs the full conversion: load dictionaries, parse the diagram,
// classify, render, and write the UVL document to config.OutputPath.
func (s *GeneratorService) Generate(config istar2uvl.GenerateConfig) (*istar2uvl.Report, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s.logger.Verbose("Generating UVL model from %s", config.DiagramPath)

	report, err := s.analyze(config.DiagramPath, config.ConfigDir, config.RootLabel, config.RequireRootGoal, config.Overrides)
	if err != nil {
		return nil, err
	}

	document := uvl.Render(report.RootFeature, report.Classification)

	if err := os.WriteFile(config.OutputPath, []byte(document), 0644); err != nil {
		return nil, fmt.Errorf("%w: %w", istar2uvl.ErrOutputWrite, err)
	}

	report.OutputPath = config.OutputPath
	s.logger.Verbose("UVL model written to %s", config.OutputPath)
	return report, nil
}

// Inspect runs the analysis pass without writing anything, for dry runs
// and diagnostics.
func (s *GeneratorService) Inspect(config istar2uvl.InspectConfig) (*istar2uvl.Report, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s.logger.Verbose("Inspecting %s", config.DiagramPath)

	return s.analyze(config.DiagramPath, config.ConfigDir, config.RootLabel, config.RequireRootGoal, config.Overrides)
}

// Render produces the UVL document text for an already-computed report.
// It exists so callers holding a Report, such as the inspect command, can
// preview the exact output without a second analysis.
func (s *GeneratorService) Render(report *istar2uvl.Report) string {
	return uvl.Render(report.RootFeature, report.Classification)
}

// analyze performs the shared conversion pass and assembles the report.
func (s *GeneratorService) analyze(diagramPath, configDir, fallbackLabel string, requireRootGoal bool, overrides istar2uvl.MappingSet) (*istar2uvl.Report, error) {
	tables := s.store.LoadAll(configDir)
	if len(overrides) > 0 {
		tables = mapping.Merge(tables, overrides)
		s.logger.Verbose("Merged ad-hoc mapping overrides for %d categories", len(overrides))
	}

	content, err := s.fsProvider.ReadFile(diagramPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram %s: %w", diagramPath, err)
	}

	objects, err := diagram.Parse(content, diagramPath)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Parsed %d objects from %s", len(objects), diagramPath)

	rootLabel, fromDiagram := classify.SelectRootLabel(objects, fallbackLabel)
	if !fromDiagram {
		if requireRootGoal {
			return nil, fmt.Errorf("diagram %s contains no goal object with a non-empty label: %w",
				diagramPath, istar2uvl.ErrMissingRootGoal)
		}
		s.logger.Verbose("No root goal in diagram, falling back to label %q", rootLabel)
	}

	rootFeature := label.ToIdentifier(rootLabel)
	features := classify.Features(objects, tables)

	s.logger.Verbose("Classified features: %d algorithms, %d NFRs, %d backends, %d integrations",
		len(features.Algorithms), len(features.NFRs), len(features.Backends), len(features.Integrations))

	return &istar2uvl.Report{
		DiagramPath:     diagramPath,
		ObjectCount:     len(objects),
		KindCounts:      countKinds(objects),
		RootLabel:       rootLabel,
		RootFeature:     rootFeature,
		RootFromDiagram: fromDiagram,
		Classification:  features,
		TableSizes:      tableSizes(tables),
		Constraints:     uvl.Constraints(features),
	}, nil
}

func countKinds(objects []istar2uvl.DiagramObject) map[string]int {
	counts := make(map[string]int)
	for _, obj := range objects {
		counts[obj.Kind]++
	}
	return counts
}

func tableSizes(tables istar2uvl.MappingSet) map[string]int {
	sizes := make(map[string]int, len(tables))
	for category, table := range tables {
		sizes[category] = len(table)
	}
	return sizes
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Project is the decoded shape of an `ion.yaml` project file: which source
// roots to compile, intrinsic name overrides, and a list of warnings to
// promote to fatal errors. cmd/ionc uses only SourceRoots; Intrinsics and
// PromoteWarnings are decoded but not applied to a compile. Grounded on the teacher's `internal/evaluator/builtins_yaml.go`
// yaml.v3 usage, retargeted from a runtime YAML builtin to the driver's own
// config format — the same library, a different consumer.
type Project struct {
	// SourceRoots are doublestar glob patterns cmd/ionc expands into a file
	// list, e.g. "src/**/*.ion".
	SourceRoots []string `yaml:"sources"`

	// Intrinsics overrides/extends the default intrinsic name set an
	// embedding host pre-declares at the resolver's root scope (see
	// internal/intrinsics).
	Intrinsics []string `yaml:"intrinsics"`

	// PromoteWarnings lists diagnostic codes (e.g. "AmbiguousEquals") that
	// should be treated as fatal even though spec.md's default severity
	// table marks them Warning.
	PromoteWarnings []string `yaml:"promote_warnings"`
}

// LoadProject reads and decodes an ion.yaml project file. A missing file is
// not an error: callers get the zero Project (compile every argv path
// literally, no promoted warnings).
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Project{}, nil
	}
	if err != nil {
		return nil, err
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PromotesWarning reports whether code names a diagnostic code listed in
// PromoteWarnings.
func (p *Project) PromotesWarning(code string) bool {
	for _, c := range p.PromoteWarnings {
		if c == code {
			return true
		}
	}
	return false
}

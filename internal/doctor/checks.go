// Package doctor implements prerequisite checks for pagegen.
//
// It validates that the manifest is loadable and schema-valid, that the
// target directory is writable, that the preview files the generated pages
// import actually exist, and that the dart tool is available for the
// downstream project.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/internal/generator"
)

// Status represents the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// CheckResult is the outcome of running a single prerequisite check.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Env carries the inputs the checks operate on.
type Env struct {
	Root         string           // repo root
	ManifestPath string           // expected pagegen.yaml location
	Manifest     *config.Manifest // effective manifest (defaults when no file)
}

// Check defines a single prerequisite check.
type Check struct {
	Name     string
	Category string // "manifest", "filesystem", "tool"
	Critical bool   // if true, failure => non-zero exit
	Run      func(ctx context.Context, exec CmdExecutor, env Env) CheckResult
}

// CmdExecutor abstracts command execution for testability.
type CmdExecutor interface {
	// Run executes a command and returns combined stdout+stderr output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// realExecutor runs commands via os/exec.
type realExecutor struct{}

func (r *realExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// NewRealExecutor returns a CmdExecutor backed by os/exec.
func NewRealExecutor() CmdExecutor {
	return &realExecutor{}
}

// Summary holds the aggregated results of all checks.
type Summary struct {
	Results    []CheckResult `json:"results"`
	TotalPass  int           `json:"totalPass"`
	TotalFail  int           `json:"totalFail"`
	TotalWarn  int           `json:"totalWarn"`
	TotalSkip  int           `json:"totalSkip"`
	HasFailure bool          `json:"hasFailure"`
}

// RunAll executes all checks and returns a summary.
func RunAll(ctx context.Context, executor CmdExecutor, env Env) Summary {
	checks := AllChecks()
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run(ctx, executor, env))
	}
	return buildSummary(results, checks)
}

func buildSummary(results []CheckResult, checks []Check) Summary {
	s := Summary{Results: results}
	for i, r := range results {
		switch r.Status {
		case StatusPass:
			s.TotalPass++
		case StatusFail:
			s.TotalFail++
			if checks[i].Critical {
				s.HasFailure = true
			}
		case StatusWarn:
			s.TotalWarn++
		case StatusSkip:
			s.TotalSkip++
		}
	}
	return s
}

// AllChecks returns the ordered list of prerequisite checks.
func AllChecks() []Check {
	return []Check{
		checkManifest(),
		checkTargetDir(),
		checkPreviews(),
		checkDartTool(),
	}
}

func checkManifest() Check {
	return Check{
		Name:     "manifest",
		Category: "manifest",
		Critical: true,
		Run: func(_ context.Context, _ CmdExecutor, env Env) CheckResult {
			if _, err := os.Stat(env.ManifestPath); err != nil {
				return CheckResult{
					Name:    "manifest",
					Status:  StatusWarn,
					Message: fmt.Sprintf("no manifest at %s; built-in defaults will be used", env.ManifestPath),
					Fix:     "run 'pagegen init' to write a starter pagegen.yaml",
				}
			}
			m, err := config.Load(env.ManifestPath)
			if err != nil {
				return CheckResult{Name: "manifest", Status: StatusFail, Message: err.Error()}
			}
			result, err := config.Validate(m)
			if err != nil {
				return CheckResult{Name: "manifest", Status: StatusFail, Message: err.Error()}
			}
			if !result.Valid {
				return CheckResult{
					Name:    "manifest",
					Status:  StatusFail,
					Message: fmt.Sprintf("%d schema violation(s)", len(result.Errors)),
					Fix:     "run 'pagegen validate' for details",
				}
			}
			return CheckResult{Name: "manifest", Status: StatusPass, Message: env.ManifestPath}
		},
	}
}

func checkTargetDir() Check {
	return Check{
		Name:     "target-dir",
		Category: "filesystem",
		Critical: true,
		Run: func(_ context.Context, _ CmdExecutor, env Env) CheckResult {
			dir := targetDir(env)
			info, err := os.Stat(dir)
			if err != nil {
				return CheckResult{
					Name:    "target-dir",
					Status:  StatusWarn,
					Message: fmt.Sprintf("%s does not exist yet; it will be created on generate", dir),
				}
			}
			if !info.IsDir() {
				return CheckResult{
					Name:    "target-dir",
					Status:  StatusFail,
					Message: fmt.Sprintf("%s exists and is not a directory", dir),
				}
			}
			probe := filepath.Join(dir, ".pagegen-doctor")
			if err := os.WriteFile(probe, nil, 0o644); err != nil {
				return CheckResult{
					Name:    "target-dir",
					Status:  StatusFail,
					Message: fmt.Sprintf("%s is not writable: %v", dir, err),
				}
			}
			_ = os.Remove(probe)
			return CheckResult{Name: "target-dir", Status: StatusPass, Message: dir}
		},
	}
}

func checkPreviews() Check {
	return Check{
		Name:     "previews",
		Category: "filesystem",
		Run: func(_ context.Context, _ CmdExecutor, env Env) CheckResult {
			if env.Manifest == nil || len(env.Manifest.Spec.Components) == 0 {
				return CheckResult{Name: "previews", Status: StatusSkip, Message: "no components configured"}
			}
			previewDir := filepath.Join(targetDir(env), "..", "preview")
			missing := make([]string, 0)
			for _, name := range env.Manifest.Spec.Components {
				vars := generator.Derive(name, env.Manifest.Spec.Extension)
				if _, err := os.Stat(filepath.Join(previewDir, vars.PreviewFileName)); err != nil {
					missing = append(missing, vars.PreviewFileName)
				}
			}
			if len(missing) > 0 {
				return CheckResult{
					Name:    "previews",
					Status:  StatusWarn,
					Message: fmt.Sprintf("%d preview file(s) missing: %s", len(missing), strings.Join(missing, ", ")),
					Fix:     "generated pages import these files; create them in the preview directory",
				}
			}
			return CheckResult{Name: "previews", Status: StatusPass, Message: fmt.Sprintf("%d preview file(s) present", len(env.Manifest.Spec.Components))}
		},
	}
}

func checkDartTool() Check {
	return Check{
		Name:     "dart",
		Category: "tool",
		Run: func(ctx context.Context, executor CmdExecutor, _ Env) CheckResult {
			out, err := executor.Run(ctx, "dart", "--version")
			if err != nil {
				return CheckResult{
					Name:    "dart",
					Status:  StatusWarn,
					Message: "dart not found on PATH; generated files cannot be compiled locally",
					Fix:     "install the Dart SDK (https://dart.dev/get-dart)",
				}
			}
			return CheckResult{Name: "dart", Status: StatusPass, Message: firstLine(out)}
		},
	}
}

func targetDir(env Env) string {
	dir := config.DefaultTargetDir
	if env.Manifest != nil && env.Manifest.Spec.TargetDir != "" {
		dir = env.Manifest.Spec.TargetDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(env.Root, dir)
	}
	return dir
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

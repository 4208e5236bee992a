// Package scaffold generates a grid selector project from the starter kit.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Files written into the checkout, relative to its root.
const (
	SrcDir             = "src"
	GridSelectorFile   = "GridSelector.js"
	ComponentsFile     = "components.js"
	PagesFile          = "pages.js"
	defaultDirFileMode = 0755
	defaultFileMode    = 0644
)

// Result summarizes a successful run.
type Result struct {
	RunID      string
	TargetDir  string
	ProjectDir string
	Files      []string
	Columns    int
	Rows       int
}

// Scaffolder runs the generation steps. The zero value is not usable; use
// New.
type Scaffolder struct {
	cloner Cloner
	out    io.Writer
	log    *zap.Logger
}

// New creates a Scaffolder. out receives the user-facing progress lines and
// clone progress; log may be nil.
func New(cloner Cloner, out io.Writer, log *zap.Logger) *Scaffolder {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scaffolder{cloner: cloner, out: out, log: log}
}

func (s *Scaffolder) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// Run validates opts, clones the starter kit below opts.Dir and writes the
// grid selector into it. Files written before a failure are left in place.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults()

	targetDir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve directory %q: %w", opts.Dir, err)
	}

	res := Result{
		RunID:      uuid.NewString(),
		TargetDir:  targetDir,
		ProjectDir: filepath.Join(targetDir, RepoName(opts.RepoURL)),
		Columns:    opts.Columns,
		Rows:       opts.Rows,
	}
	log := s.log.With(zap.String("run_id", res.RunID))
	log.Debug("scaffold started",
		zap.String("target_dir", targetDir),
		zap.String("repo", opts.RepoURL),
		zap.Int("columns", opts.Columns),
		zap.Int("rows", opts.Rows))

	if _, err := os.Stat(targetDir); errors.Is(err, os.ErrNotExist) {
		s.printf("Creating directory: %s\n", targetDir)
		if err := os.MkdirAll(targetDir, defaultDirFileMode); err != nil {
			return res, fmt.Errorf("failed to create directory: %w", err)
		}
	} else if err != nil {
		return res, fmt.Errorf("failed to inspect directory: %w", err)
	}

	if empty, err := isEmptyOrMissing(res.ProjectDir); err != nil {
		return res, fmt.Errorf("failed to inspect checkout directory: %w", err)
	} else if !empty {
		return res, fmt.Errorf("%w: %s", ErrCheckoutExists, res.ProjectDir)
	}

	s.printf("Cloning starter kit repository...\n")
	err = s.cloner.Clone(ctx, res.ProjectDir, CloneRequest{
		URL:            opts.RepoURL,
		Ref:            opts.Ref,
		Auth:           opts.Auth,
		SSHKeyPath:     opts.SSHKeyPath,
		KnownHostsPath: opts.KnownHostsPath,
		Progress:       s.out,
	})
	if err != nil {
		log.Debug("clone failed", zap.Error(err))
		return res, err
	}
	log.Info("starter kit cloned", zap.String("project_dir", res.ProjectDir))

	srcDir := filepath.Join(res.ProjectDir, SrcDir)
	if err := os.MkdirAll(srcDir, defaultDirFileMode); err != nil {
		return res, fmt.Errorf("failed to create src directory: %w", err)
	}

	s.printf("Creating GridSelector component...\n")
	source, err := GridSelectorSource()
	if err != nil {
		return res, fmt.Errorf("failed to read component template: %w", err)
	}
	if err := s.writeFile(&res, srcDir, GridSelectorFile, source); err != nil {
		return res, err
	}

	s.printf("Updating components.js...\n")
	existing, err := os.ReadFile(filepath.Join(srcDir, ComponentsFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return res, fmt.Errorf("failed to read %s: %w", ComponentsFile, err)
	}
	if err := s.writeFile(&res, srcDir, ComponentsFile, []byte(PatchComponents(string(existing)))); err != nil {
		return res, err
	}

	s.printf("Updating pages.js...\n")
	pages, err := RenderPages(opts.Rows, opts.Columns)
	if err != nil {
		return res, err
	}
	if err := s.writeFile(&res, srcDir, PagesFile, pages); err != nil {
		return res, err
	}

	log.Info("scaffold finished", zap.Strings("files", res.Files))
	return res, nil
}

func (s *Scaffolder) writeFile(res *Result, dir, name string, data []byte) error {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, defaultFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	rel, err := filepath.Rel(res.ProjectDir, p)
	if err != nil {
		rel = p
	}
	res.Files = append(res.Files, filepath.ToSlash(rel))
	s.log.Debug("wrote file", zap.String("path", p), zap.Int("bytes", len(data)))
	return nil
}

func isEmptyOrMissing(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

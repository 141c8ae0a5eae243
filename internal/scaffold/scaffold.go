package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/kculz/greycodejs-cli/internal/fetch"
	"github.com/kculz/greycodejs-cli/internal/progress"
	"github.com/kculz/greycodejs-cli/internal/prompt"
	"github.com/kculz/greycodejs-cli/internal/runtime"
	"github.com/kculz/greycodejs-cli/internal/style"
	"github.com/kculz/greycodejs-cli/internal/target"
)

// Interview question names.
const (
	QuestionDescription = "projectDescription"
	QuestionAuthor      = "author"
)

// Request is one invocation of the new-project pipeline.
type Request struct {
	ProjectName string
	// Directory overrides the destination; empty means ProjectName.
	Directory   string
	SkipInstall bool
}

// Result summarizes a pipeline run.
type Result struct {
	Dir       string
	Outcome   target.Outcome
	Answers   Answers
	Manifest  *Rewrite
	EnvSeeded bool
	// Installed is true when the install ran and succeeded.
	Installed bool
	// InstallErr holds a non-fatal install failure.
	InstallErr error
}

// Scaffolder runs the new-project pipeline.
type Scaffolder struct {
	Identity Identity
	Fetcher  fetch.Fetcher
	Prompter prompt.Prompter
	Packages runtime.PackageManager

	// Out receives progress and the report; Err receives error details.
	// Both default to os.Stdout/os.Stderr.
	Out io.Writer
	Err io.Writer
	Log *zap.Logger
}

func (s *Scaffolder) init() error {
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	if s.Fetcher == nil {
		return errors.New("scaffold: no template fetcher configured")
	}
	if s.Prompter == nil {
		return errors.New("scaffold: no prompter configured")
	}
	return nil
}

// Run executes every stage in order. A declined overwrite returns a Result
// with Outcome Declined and no error. Fatal failures are returned as
// *StageError; an install failure is recorded in Result.InstallErr instead.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	if req.ProjectName == "" {
		return nil, stageErr(StageTarget, errors.New("project name is required"))
	}

	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, style.Title.Render(fmt.Sprintf("⚡ Creating a new %s project...", s.Identity.DisplayName)))
	fmt.Fprintln(s.Out)

	res := &Result{Dir: target.Resolve(req.ProjectName, req.Directory)}
	log := s.Log.With(zap.String("project", req.ProjectName), zap.String("dir", res.Dir))

	// Target
	outcome, err := target.Prepare(res.Dir, s.Prompter)
	res.Outcome = outcome
	if err != nil {
		return res, stageErr(StageTarget, err)
	}
	log.Debug("destination prepared", zap.Stringer("outcome", outcome))
	if !outcome.Proceed() {
		fmt.Fprintln(s.Out, style.Error.Render("❌ Operation cancelled"))
		return res, nil
	}

	// Fetch
	if err := s.fetch(ctx, res.Dir, log); err != nil {
		return res, stageErr(StageFetch, err)
	}

	// Interview
	answers, err := s.interview()
	if err != nil {
		return res, stageErr(StageInterview, err)
	}
	res.Answers = answers

	// Manifest
	rw, err := RewriteManifest(res.Dir, req.ProjectName, answers, s.Identity.ToolName)
	if err != nil {
		return res, stageErr(StageManifest, err)
	}
	res.Manifest = rw
	log.Debug("manifest rewritten", zap.Bool("skipped", rw.Skipped), zap.String("bin", rw.BinPath))
	for _, w := range rw.Warnings {
		fmt.Fprintln(s.Out, style.Warning.Render("Warning: package.json "+w))
	}

	// Env
	seeded, err := SeedEnv(res.Dir)
	if err != nil {
		return res, stageErr(StageEnv, err)
	}
	res.EnvSeeded = seeded
	if seeded {
		fmt.Fprintln(s.Out, style.Success.Render("Created .env file from .env.example"))
	}

	// Install
	if !req.SkipInstall {
		res.InstallErr = s.install(ctx, res.Dir, log)
		res.Installed = res.InstallErr == nil
	}

	// Report
	if err := Report(s.Out, ReportOptions{
		Dir:            res.Dir,
		DisplayName:    s.Identity.DisplayName,
		PackageManager: s.packageManagerName(),
		InstallSkipped: req.SkipInstall,
	}); err != nil {
		fmt.Fprintln(s.Err, style.Warning.Render("Warning: could not re-read package.json: "+err.Error()))
		log.Debug("report re-read failed", zap.Error(err))
	}
	return res, nil
}

func (s *Scaffolder) fetch(ctx context.Context, dir string, log *zap.Logger) error {
	spin := progress.New(s.Out)
	spin.Start(fmt.Sprintf("Downloading %s framework from GitHub...", s.Identity.DisplayName))

	src, err := fetch.ParseSource(s.Identity.TemplateSource)
	if err == nil {
		log.Debug("fetching template", zap.Stringer("source", src))
		err = s.Fetcher.Fetch(ctx, src, dir)
	}
	if err != nil {
		spin.Fail("Failed to download template")
		return err
	}
	spin.Succeed("Downloaded successfully!")
	return nil
}

func (s *Scaffolder) interview() (Answers, error) {
	values, err := s.Prompter.Ask([]prompt.Question{
		{Name: QuestionDescription, Message: "Project description:", Default: s.Identity.DefaultDescription},
		{Name: QuestionAuthor, Message: "Author name:", Default: ""},
	})
	if err != nil {
		return Answers{}, err
	}
	return Answers{Description: values[QuestionDescription], Author: values[QuestionAuthor]}, nil
}

func (s *Scaffolder) install(ctx context.Context, dir string, log *zap.Logger) error {
	s.warnEngines(ctx, dir, log)

	spin := progress.New(s.Out)
	spin.Start("Installing dependencies...")

	err := errors.New("no package manager configured")
	if s.Packages != nil {
		err = s.Packages.Install(ctx, dir)
	}
	if err != nil {
		spin.Fail("Failed to install dependencies")
		fmt.Fprintln(s.Err, style.Error.Render("Error: "+err.Error()))
		log.Debug("install failed", zap.Error(err))
		return err
	}
	spin.Succeed("Dependencies installed successfully")
	return nil
}

// warnEngines prints a warning when the installed node does not satisfy
// engines.node. Any problem running the check is only logged.
func (s *Scaffolder) warnEngines(ctx context.Context, dir string, log *zap.Logger) {
	m, err := readManifest(dir)
	if err != nil || m == nil {
		return
	}
	check, err := runtime.CheckEngines(ctx, m)
	if err != nil {
		log.Debug("engines check skipped", zap.Error(err))
		return
	}
	if check != nil && !check.Satisfied {
		fmt.Fprintln(s.Out, style.Warning.Render(fmt.Sprintf(
			"Warning: this project requires node %s but %s is installed", check.Constraint, check.Installed)))
	}
}

func (s *Scaffolder) packageManagerName() string {
	if s.Packages == nil {
		return runtime.NPM
	}
	return s.Packages.Name()
}

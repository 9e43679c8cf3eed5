// Package app implements the application layer for pkgdesc.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/pkgdesc/internal/core/ports"
	"go.trai.ch/pkgdesc/internal/engine/descriptor"
	"go.trai.ch/zerr"
)

// App loads descriptors and answers one lifecycle question per call.
type App struct {
	loader    ports.DescriptorLoader
	osSource  ports.OSIdentitySource
	verifier  ports.LayoutVerifier
	runner    ports.CommandRunner
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.DescriptorLoader,
	osSource ports.OSIdentitySource,
	verifier ports.LayoutVerifier,
	runner ports.CommandRunner,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		osSource:  osSource,
		verifier:  verifier,
		runner:    runner,
		logger:    logger,
		telemetry: telemetry,
	}
}

// PlanOptions selects the variants to plan.
type PlanOptions struct {
	// VariantIndex selects a single variant by position when non-negative.
	VariantIndex int
	// With selects the first variant satisfying every listed requirement.
	With []string
	// All plans every variant.
	All bool
}

// EnvOptions configures environment composition.
type EnvOptions struct {
	// Root is the package's install root.
	Root string
	// Verify checks the install layout under Root and warns about missing directories.
	Verify bool
}

// RunOptions configures RunPreBuild.
type RunOptions struct {
	// OSSource overrides the App's OS identity source when non-nil.
	OSSource ports.OSIdentitySource
	// Command runs in the prepared shell after the pre-build commands.
	Command []string
	// Root activates the package installed there before running Command.
	Root string
	// Env is the base process environment.
	Env map[string]string
	// Stdout and Stderr receive the script output.
	Stdout io.Writer
	Stderr io.Writer
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Validate loads the descriptor at path and checks its invariants.
func (a *App) Validate(ctx context.Context, path string) (*domain.Descriptor, error) {
	return a.load(ctx, path)
}

// Plan resolves build plans for the descriptor at path.
func (a *App) Plan(ctx context.Context, path string, opts PlanOptions) ([]domain.BuildPlan, error) {
	d, err := a.load(ctx, path)
	if err != nil {
		return nil, err
	}

	ctx, vertex := a.record(ctx, d, domain.PhasePlan)
	plans, err := a.plan(ctx, descriptor.New(*d), opts)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "failed to resolve build plan")
	}

	for _, p := range plans {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("variant %d: %s", p.VariantIndex, p.ID))
	}
	vertex.Complete(nil)
	return plans, nil
}

func (a *App) plan(ctx context.Context, engine *descriptor.Engine, opts PlanOptions) ([]domain.BuildPlan, error) {
	if opts.All {
		return engine.ResolveAllBuildPlans(ctx)
	}

	preds := make([]domain.VariantPredicate, 0, len(opts.With)+1)
	if opts.VariantIndex >= 0 {
		preds = append(preds, domain.Index(opts.VariantIndex))
	}
	for _, raw := range opts.With {
		req, err := domain.ParsePackageRef(raw)
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.Satisfies(req))
	}

	plan, err := engine.ResolveBuildPlan(domain.All(preds...))
	if err != nil && len(opts.With) > 0 {
		return nil, zerr.With(err, "with", strings.Join(opts.With, ","))
	}
	if err != nil {
		return nil, err
	}
	return []domain.BuildPlan{plan}, nil
}

// PreBuild returns the commands to run before building on this host.
// A nil src uses the App's default OS identity source.
func (a *App) PreBuild(ctx context.Context, path string, src ports.OSIdentitySource) ([]string, error) {
	d, err := a.load(ctx, path)
	if err != nil {
		return nil, err
	}

	_, vertex := a.record(ctx, d, domain.PhasePreBuild)
	commands, err := a.prereqCommands(d, src, vertex)
	vertex.Complete(err)
	return commands, err
}

// RunPreBuild runs the host's pre-build commands in one bash shell, followed by opts.Command.
// When opts.Root is set, the package environment is applied on top of opts.Env first.
func (a *App) RunPreBuild(ctx context.Context, path string, opts RunOptions) error {
	d, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	ctx, vertex := a.record(ctx, d, domain.PhasePreBuild)
	commands, err := a.prereqCommands(d, opts.OSSource, vertex)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	env := opts.Env
	if opts.Root != "" {
		muts, err := descriptor.New(*d).ComposeEnvironment(opts.Root)
		if err != nil {
			vertex.Complete(err)
			return zerr.Wrap(err, "failed to compose environment")
		}
		env = domain.ApplyMutations(env, muts, ":")
	}

	stdout := io.MultiWriter(writerOrDiscard(opts.Stdout), vertex.Stdout())
	stderr := io.MultiWriter(writerOrDiscard(opts.Stderr), vertex.Stderr())
	script := domain.PreBuildScript(commands, opts.Command)

	var environ []string
	if env != nil {
		environ = domain.Environ(env)
	}

	err = a.runner.Run(ctx, script, environ, stdout, stderr)
	vertex.Complete(err)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to run pre-build commands"), "package", d.Name)
	}
	return nil
}

func (a *App) prereqCommands(d *domain.Descriptor, src ports.OSIdentitySource, vertex ports.Vertex) ([]string, error) {
	if src == nil {
		src = a.osSource
	}
	osInfo, err := src.Identity()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to detect host distribution")
	}

	if osInfo.DistroName == "" {
		a.logger.Warn(fmt.Sprintf("host distribution unknown, assuming %s", d.Prereqs.Fallback))
	} else if !d.Prereqs.Matches(osInfo) {
		a.logger.Warn(fmt.Sprintf("no pre-build rule for %q", osInfo.DistroName))
	}

	commands := descriptor.New(*d).ResolvePrereqCommands(osInfo)
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d pre-build commands for %q", len(commands), osInfo.DistroName))
	return commands, nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// Env composes the activation mutations for the package installed at opts.Root.
func (a *App) Env(ctx context.Context, path string, opts EnvOptions) ([]domain.EnvMutation, error) {
	d, err := a.load(ctx, path)
	if err != nil {
		return nil, err
	}

	_, vertex := a.record(ctx, d, domain.PhaseActivate)
	muts, err := descriptor.New(*d).ComposeEnvironment(opts.Root)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "failed to compose environment")
	}

	if opts.Verify {
		missing, err := a.verifier.VerifyLayout(opts.Root, d.Layout)
		if err != nil {
			vertex.Complete(err)
			return nil, zerr.With(zerr.Wrap(err, "failed to verify install layout"), "root", opts.Root)
		}
		for _, dir := range missing {
			a.logger.Warn(fmt.Sprintf("%s is missing under %s", dir, opts.Root))
		}
	}

	vertex.Complete(nil)
	return muts, nil
}

// ReleasePath resolves the release destination of the descriptor at path from env.
func (a *App) ReleasePath(ctx context.Context, path string, env map[string]string) (string, error) {
	d, err := a.load(ctx, path)
	if err != nil {
		return "", err
	}

	_, vertex := a.record(ctx, d, domain.PhaseRelease)
	dest, err := descriptor.New(*d).ResolveReleasePath(env)
	vertex.Complete(err)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve release path")
	}

	a.logger.Info(fmt.Sprintf("%s releases to %s", d.Name, dest))
	return dest, nil
}

func (a *App) load(ctx context.Context, path string) (*domain.Descriptor, error) {
	_, vertex := a.telemetry.Record(ctx, domain.PhaseLoad.VertexName(path), ports.WithPhase(domain.PhaseLoad))

	d, err := a.loader.Load(path)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load package descriptor")
	}

	a.logger.Info(fmt.Sprintf("loaded %s %s (%d variants)", d.Name, d.RawVersion, len(d.Variants)))
	return d, nil
}

func (a *App) record(ctx context.Context, d *domain.Descriptor, phase domain.LifecyclePhase) (context.Context, ports.Vertex) {
	return a.telemetry.Record(ctx, phase.VertexName(d.Name), ports.WithPhase(phase))
}

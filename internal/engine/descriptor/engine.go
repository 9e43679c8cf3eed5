// Package descriptor sequences the domain operations over one loaded descriptor.
package descriptor

import (
	"context"
	"runtime"

	"go.trai.ch/pkgdesc/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Engine answers build, pre-build and activation questions for a single descriptor.
// It holds no mutable state and returns domain errors unchanged.
type Engine struct {
	d domain.Descriptor
}

// New creates an Engine over d.
func New(d domain.Descriptor) *Engine {
	return &Engine{d: d}
}

// Validate checks the descriptor's invariants.
func (e *Engine) Validate() error {
	return e.d.Validate()
}

// variants returns the declared variants, or a single empty variant for an unvariated package.
func (e *Engine) variants() []domain.Variant {
	if len(e.d.Variants) == 0 {
		return []domain.Variant{{}}
	}
	return e.d.Variants
}

// ResolveBuildPlan returns the plan for the first variant accepted by pred.
func (e *Engine) ResolveBuildPlan(pred domain.VariantPredicate) (domain.BuildPlan, error) {
	index, variant, err := domain.SelectVariant(e.variants(), pred)
	if err != nil {
		return domain.BuildPlan{}, err
	}
	return domain.NewBuildPlan(&e.d, index, variant), nil
}

// ResolveAllBuildPlans returns one plan per variant, in variant order.
func (e *Engine) ResolveAllBuildPlans(ctx context.Context) ([]domain.BuildPlan, error) {
	variants := e.variants()
	plans := make([]domain.BuildPlan, len(variants))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, variant := range variants {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			// Each goroutine owns plans[i].
			plans[i] = domain.NewBuildPlan(&e.d, i, variant)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// ResolvePrereqCommands returns the commands to run before building on the host described by osInfo.
func (e *Engine) ResolvePrereqCommands(osInfo domain.OSIdentity) []string {
	return e.d.Prereqs.SelectCommands(osInfo)
}

// ComposeEnvironment returns the ordered mutations that activate the package installed at root.
func (e *Engine) ComposeEnvironment(root string) ([]domain.EnvMutation, error) {
	parts, err := domain.SplitVersion(e.d.RawVersion)
	if err != nil {
		return nil, err
	}
	return domain.ComposeEnvironment(parts, root, e.d.Layout.WithDefaults(e.d.Name)), nil
}

// ResolveReleasePath returns the destination for the descriptor's release target.
func (e *Engine) ResolveReleasePath(env map[string]string) (string, error) {
	return domain.ResolveReleasePath(e.d.ReleaseTarget, e.d.Release, env)
}

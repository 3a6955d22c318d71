// Package app implements the overlay lifecycle for tlenv.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/tlenv/internal/engine/overlay"
	"go.trai.ch/tlenv/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// postInstallTools are run inside the fresh overlay, in order: rebuild the
// ls-R databases, generate missing formats, then synchronize and apply the
// font maps.
var postInstallTools = [][]string{
	{"mktexlsr"},
	{"fmtutil-sys", "--missing"},
	{"updmap-sys", "--syncwithtrees"},
	{"updmap-sys"},
}

// App wires the collaborators into the install/run/verify operations.
type App struct {
	loader    ports.ConfigLoader
	installer ports.Installer
	dist      ports.DistInfo
	runner    ports.Runner
	host      ports.Host
	logger    ports.Logger

	resolver     *resolver.Resolver
	materializer *overlay.Materializer
	verifier     *overlay.Verifier
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	meta ports.MetadataQuery,
	installer ports.Installer,
	dist ports.DistInfo,
	runner ports.Runner,
	host ports.Host,
	logger ports.Logger,
) *App {
	return &App{
		loader:       loader,
		installer:    installer,
		dist:         dist,
		runner:       runner,
		host:         host,
		logger:       logger,
		resolver:     resolver.New(meta),
		materializer: overlay.NewMaterializer(host),
		verifier:     overlay.NewVerifier(),
	}
}

// Install brings the project overlay up to date. When the persisted marker
// matches the declared configuration the call short-circuits without side
// effects; otherwise the whole overlay is wiped and rebuilt, and the marker
// is written only after every step succeeded.
func (a *App) Install(ctx context.Context, force bool) error {
	cfg, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	localRoot := filepath.Join(cfg.Root, overlay.DirName)

	if !force && !overlay.ShouldRebuild(cfg, localRoot) {
		a.logger.Info("up-to-date")
		return nil
	}

	if err := overlay.Remove(localRoot); err != nil {
		return err
	}
	if err := os.MkdirAll(localRoot, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create overlay root"), "path", localRoot)
	}

	if err := a.installer.Install(ctx, cfg.Dependencies); err != nil {
		return err
	}

	globalRoot, err := a.dist.Root(ctx)
	if err != nil {
		return err
	}
	platform, err := a.dist.Platform(ctx)
	if err != nil {
		return err
	}

	seeds := resolver.Seeds(cfg.Dependencies, a.host.ExtraSeeds())
	packages, err := a.resolver.Closure(ctx, seeds, platform)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("materializing %d packages", len(packages)))

	if err := a.materializer.Materialize(globalRoot, localRoot, platform, packages); err != nil {
		return err
	}

	for _, dir := range []string{"texmf-config", "texmf-var"} {
		if err := os.MkdirAll(filepath.Join(localRoot, dir), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create overlay directory"), "path", filepath.Join(localRoot, dir))
		}
	}

	env := overlay.Environ(os.Environ(), globalRoot, localRoot, a.host)
	for _, tool := range postInstallTools {
		if err := a.runTool(ctx, tool, env); err != nil {
			return err
		}
	}

	return overlay.WriteMarker(localRoot, cfg)
}

func (a *App) runTool(ctx context.Context, tool []string, env []string) error {
	argv := a.host.Argv(tool[0], tool[1:]...)
	code, err := a.runner.Run(ctx, argv[0], argv[1:], env)
	if err != nil {
		return zerr.With(err, "command", strings.Join(tool, " "))
	}
	if code != 0 {
		cmdErr := zerr.With(domain.ErrCommandFailed, "command", strings.Join(tool, " "))
		return zerr.With(cmdErr, "exit_code", code)
	}
	return nil
}

// Exec runs an arbitrary program with its search paths redirected into the
// overlay and returns the child's exit code.
func (a *App) Exec(ctx context.Context, program string, args []string) (int, error) {
	cfg, err := a.loader.Load(".")
	if err != nil {
		return 0, zerr.Wrap(err, "failed to load configuration")
	}

	globalRoot, err := a.dist.Root(ctx)
	if err != nil {
		return 0, err
	}

	localRoot := filepath.Join(cfg.Root, overlay.DirName)
	env := overlay.Environ(os.Environ(), globalRoot, localRoot, a.host)

	argv := a.host.Argv(program, args...)
	return a.runner.Run(ctx, argv[0], argv[1:], env)
}

// Verify checks the existing overlay against the global root and reports
// broken links and content drift. Returns domain.ErrOverlayDrift when the
// overlay no longer matches.
func (a *App) Verify(ctx context.Context) error {
	cfg, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	localRoot := filepath.Join(cfg.Root, overlay.DirName)

	if _, err := os.Stat(localRoot); err != nil {
		return zerr.With(zerr.New("no overlay present, run install first"), "path", localRoot)
	}

	globalRoot, err := a.dist.Root(ctx)
	if err != nil {
		return err
	}

	report, err := a.verifier.Verify(ctx, globalRoot, localRoot)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("verified %d links and %d files", report.Links, report.Files))
	if report.Clean() {
		return nil
	}

	for _, rel := range report.Broken {
		a.logger.Warn("broken link: " + rel)
	}
	for _, rel := range report.Missing {
		a.logger.Warn("missing from global root: " + rel)
	}
	for _, rel := range report.Modified {
		a.logger.Warn("content drift: " + rel)
	}

	driftErr := zerr.With(domain.ErrOverlayDrift, "broken", len(report.Broken))
	driftErr = zerr.With(driftErr, "missing", len(report.Missing))
	return zerr.With(driftErr, "modified", len(report.Modified))
}

// Package tlmgr implements the distribution collaborators (metadata query,
// installer, platform and root queries) by shelling out to the TeX Live
// manager and kpathsea CLIs.
package tlmgr

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client talks to tlmgr and kpsewhich. It implements ports.MetadataQuery,
// ports.Installer and ports.DistInfo.
type Client struct {
	host   ports.Host
	runner ports.Runner
}

// NewClient creates a Client for the given host.
func NewClient(host ports.Host, runner ports.Runner) *Client {
	return &Client{host: host, runner: runner}
}

// Info runs one `tlmgr info --json` invocation covering all of names and
// decodes the returned records.
func (c *Client) Info(ctx context.Context, names []string) ([]domain.Package, error) {
	output, err := c.capture(ctx, "tlmgr", append([]string{"info", "--json"}, names...)...)
	if err != nil {
		return nil, err
	}
	return decodePackages(output)
}

// Install installs the given packages into the global root. tlmgr resolves
// its own dependency closure; only the exit status matters here.
func (c *Client) Install(ctx context.Context, names []string) error {
	argv := c.host.Argv("tlmgr", append([]string{"install"}, names...)...)
	code, err := c.runner.Run(ctx, argv[0], argv[1:], os.Environ())
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	if code != 0 {
		installErr := zerr.With(domain.ErrInstallFailed, "command", "tlmgr install "+strings.Join(names, " "))
		return zerr.With(installErr, "exit_code", code)
	}
	return nil
}

// Root returns the absolute path of the global installation root.
func (c *Client) Root(ctx context.Context) (string, error) {
	output, err := c.capture(ctx, "kpsewhich", "-var-value=TEXMFROOT")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// Platform returns the distribution's identifier for the current platform.
func (c *Client) Platform(ctx context.Context) (string, error) {
	output, err := c.capture(ctx, "tlmgr", "print-platform")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// capture runs a distribution command and returns its stdout. A spawn
// failure or non-zero exit surfaces as ErrMetadataUnavailable with the
// command description attached.
func (c *Client) capture(ctx context.Context, exe string, args ...string) ([]byte, error) {
	argv := c.host.Argv(exe, args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Fixed distribution executables
	output, err := cmd.Output()
	if err != nil {
		queryErr := zerr.Wrap(err, domain.ErrMetadataUnavailable.Error())
		queryErr = zerr.With(queryErr, "command", exe+" "+strings.Join(args, " "))

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			queryErr = zerr.With(queryErr, "exit_code", exitErr.ExitCode())
			queryErr = zerr.With(queryErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, queryErr
	}

	return output, nil
}

package inventory

import (
	"context"
	"os/exec"
	"strings"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"go.trai.ch/zerr"
)

// CommandRunner executes a command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// familyCommands maps each package manager family to the query that prints
// one installed package name per line.
var familyCommands = map[domain.Family][]string{
	domain.FamilyRPM:    {"rpm", "-qa", "--qf", "%{NAME}\n"},
	domain.FamilyDeb:    {"dpkg-query", "-W", "-f", "${Package}\n"},
	domain.FamilyPacman: {"pacman", "-Qq"},
	domain.FamilyAPK:    {"apk", "info"},
}

// HostProvider lists the packages installed on the host by querying the
// source distribution's package manager.
type HostProvider struct {
	family domain.Family
	run    CommandRunner
}

// NewHostProvider creates a provider for the given package manager family.
func NewHostProvider(family domain.Family) *HostProvider {
	return &HostProvider{family: family, run: runCommand}
}

// NewHostProviderWithRunner creates a provider with a custom command runner.
func NewHostProviderWithRunner(family domain.Family, run CommandRunner) *HostProvider {
	return &HostProvider{family: family, run: run}
}

// Packages returns the normalized names of all installed packages.
func (p *HostProvider) Packages(ctx context.Context) ([]string, error) {
	argv, ok := familyCommands[p.family]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownFamily, "family", string(p.family))
	}

	output, err := p.run(ctx, argv[0], argv[1:]...)
	if err != nil {
		wrappedErr := zerr.Wrap(err, domain.ErrInventoryCommandFailed.Error())

		return nil, zerr.With(wrappedErr, "command", argv[0])
	}

	return normalize(strings.Split(string(output), "\n")), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Command comes from the static family table
	return cmd.Output()
}

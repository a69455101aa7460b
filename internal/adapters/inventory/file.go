// Package inventory produces the list of package names a resolution run
// operates on, either from a file or from the host's package manager.
package inventory

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileProvider reads package names from a newline-separated file.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Packages returns the normalized package names listed in the file.
func (p *FileProvider) Packages(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(p.path) //nolint:gosec // Path comes from an explicit user flag
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInventoryReadFailed.Error())
	}

	return normalize(strings.Split(string(data), "\n")), nil
}

// normalize trims whitespace, drops blank lines and '#' comments,
// deduplicates and sorts.
func normalize(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))

	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

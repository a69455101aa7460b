package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crossgrade/crossgrade/internal/adapters/report"
	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, report.WriteYAML(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "report", data)
}

func TestWriteYAML_EmptyPartial(t *testing.T) {
	t.Parallel()

	r := &domain.MappingReport{Target: "void", Digest: "00ff00ff00ff00ff", Partial: true}
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, report.WriteYAML(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "report_empty_partial", data)
}

func TestWriteYAML_CreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "nested", "report.yaml")
	require.NoError(t, report.WriteYAML(path, sampleReport()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteYAML_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	occupied := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("x"), 0o600))

	err := report.WriteYAML(filepath.Join(occupied, "report.yaml"), sampleReport())
	require.Error(t, err)
	// String check because zerr wrapping does not preserve the sentinel chain.
	assert.Contains(t, err.Error(), domain.ErrReportWriteFailed.Error())
}

package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/crossgrade/crossgrade/internal/app"
	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// routedTransport serves canned lookup responses keyed by URL substring and
// counts every request it sees. Patterns must not overlap since map order is
// undefined.
type routedTransport struct {
	mu       sync.Mutex
	routes   map[string]string
	requests int
}

func (rt *routedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.requests++
	rt.mu.Unlock()

	for pattern, body := range rt.routes {
		if strings.Contains(req.URL.String(), pattern) {
			return jsonResponse(http.StatusOK, body), nil
		}
	}
	return jsonResponse(http.StatusNotFound, ""), nil
}

func (rt *routedTransport) requestCount() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.requests
}

// transportFunc adapts a function to http.RoundTripper.
type transportFunc func(*http.Request) (*http.Response, error)

func (f transportFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func testSettings(cacheDir string) *domain.Settings {
	return &domain.Settings{
		Source: domain.Distro{ID: "debian_13", Family: domain.FamilyDeb, OfficialRepo: "debian_13"},
		Targets: map[string]domain.Distro{
			"arch": {ID: "arch", Family: domain.FamilyPacman, OfficialRepo: "arch", CommunityRepo: "aur"},
		},
		DefaultTarget:     "arch",
		CacheDir:          cacheDir,
		CacheTTL:          domain.DefaultCacheTTL,
		LookupBaseURL:     "https://lookup.test",
		LookupMinInterval: 0, // no pacing delays in tests
		LookupContact:     "dev@example.com",
	}
}

func writeInventory(t *testing.T, dir string, names ...string) string {
	t.Helper()

	path := filepath.Join(dir, "packages.txt")
	err := os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), domain.FilePerm)
	require.NoError(t, err)
	return path
}

type appTestEnv struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	transport *routedTransport
	stdout    *bytes.Buffer
	clock     *clockwork.FakeClock
	tmpDir    string
	cacheDir  string
}

func setupAppTest(t *testing.T, routes map[string]string) *appTestEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	env := &appTestEnv{
		loader:    mocks.NewMockConfigLoader(ctrl),
		transport: &routedTransport{routes: routes},
		stdout:    &bytes.Buffer{},
		clock:     clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		tmpDir:    tmpDir,
		cacheDir:  filepath.Join(tmpDir, "cache"),
	}
	env.app = app.New(env.loader, logger).
		WithStdout(env.stdout).
		WithTransport(env.transport).
		WithClock(env.clock)
	return env
}

func TestApp_Resolve(t *testing.T) {
	env := setupAppTest(t, map[string]string{
		"search=bash":            `{"bash": [{"repo": "arch", "binname": "bash"}]}`,
		"search=libfoo":          `{}`,
		"/api/v1/project/libfoo": `[]`,
	})
	inventory := writeInventory(t, env.tmpDir, "bash", "libfoo")
	reportPath := filepath.Join(env.tmpDir, "report.yaml")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
		ReportPath: reportPath,
	})
	require.NoError(t, err)

	out := env.stdout.String()
	assert.Contains(t, out, "bash")
	assert.Contains(t, out, "∅")
	assert.Contains(t, out, "2 PROCESSED, 1 FOUND, 1 NOT FOUND")
	assert.NotContains(t, out, "PARTIAL")

	// One resolution file per package under the target's cache subtree.
	archDir := domain.ResolutionsPath(env.cacheDir, "arch")
	assert.FileExists(t, filepath.Join(archDir, "bash.json"))
	assert.FileExists(t, filepath.Join(archDir, "libfoo.json"))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: arch")
	assert.Contains(t, string(data), "origin: network")
}

func TestApp_Resolve_SecondRunHitsCache(t *testing.T) {
	env := setupAppTest(t, map[string]string{
		"search=bash": `{"bash": [{"repo": "arch", "binname": "bash"}]}`,
	})
	inventory := writeInventory(t, env.tmpDir, "bash")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil).Times(2)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
	})
	require.NoError(t, err)
	firstRun := env.transport.requestCount()
	require.Positive(t, firstRun)

	env.stdout.Reset()
	err = env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
	})
	require.NoError(t, err)

	assert.Equal(t, firstRun, env.transport.requestCount(), "fresh cache entry must not hit the network")
	assert.Contains(t, env.stdout.String(), "cache")
}

func TestApp_Resolve_RefreshBypassesCache(t *testing.T) {
	env := setupAppTest(t, map[string]string{
		"search=bash": `{"bash": [{"repo": "arch", "binname": "bash"}]}`,
	})
	inventory := writeInventory(t, env.tmpDir, "bash")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil).Times(2)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
	})
	require.NoError(t, err)
	firstRun := env.transport.requestCount()

	env.stdout.Reset()
	err = env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
		Refresh:    true,
	})
	require.NoError(t, err)

	assert.Greater(t, env.transport.requestCount(), firstRun, "refresh must discard cached resolutions")
	assert.Contains(t, env.stdout.String(), "network")
}

func TestApp_Resolve_LimitCapsInventory(t *testing.T) {
	env := setupAppTest(t, map[string]string{
		"search=bash": `{"bash": [{"repo": "arch", "binname": "bash"}]}`,
	})
	inventory := writeInventory(t, env.tmpDir, "bash", "libfoo", "zlib")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
		Limit:      1,
	})
	require.NoError(t, err)

	assert.Contains(t, env.stdout.String(), "1 PROCESSED, 1 FOUND, 0 NOT FOUND")
	assert.NoFileExists(t, filepath.Join(domain.ResolutionsPath(env.cacheDir, "arch"), "libfoo.json"))
}

func TestApp_Resolve_ConfigLoaderError(t *testing.T) {
	env := setupAppTest(t, nil)

	env.loader.EXPECT().Load(".").Return(nil, errors.New("config load error"))

	err := env.app.Resolve(context.Background(), app.ResolveOptions{OutputMode: "quiet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Resolve_UnknownTarget(t *testing.T) {
	env := setupAppTest(t, nil)

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		Target:     "gentoo",
		OutputMode: "quiet",
	})
	require.Error(t, err)
	// String check because zerr wrapping does not preserve the sentinel chain.
	assert.Contains(t, err.Error(), domain.ErrUnknownTarget.Error())
}

func TestApp_Resolve_MissingInventoryFile(t *testing.T) {
	env := setupAppTest(t, nil)

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   filepath.Join(env.tmpDir, "does-not-exist.txt"),
		OutputMode: "quiet",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInventoryReadFailed.Error())
}

func TestApp_Resolve_InvalidOutputMode(t *testing.T) {
	env := setupAppTest(t, nil)
	inventory := writeInventory(t, env.tmpDir, "bash")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "fancy",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidOutputMode.Error())
}

func TestApp_Resolve_FailureStillPrintsPartialReport(t *testing.T) {
	env := setupAppTest(t, nil)
	inventory := writeInventory(t, env.tmpDir, "bash", "zlib")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The second lookup cancels the run mid-flight; the failing status keeps
	// the client from treating the response as an answer.
	env.app.WithTransport(transportFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.String(), "search=bash") {
			return jsonResponse(http.StatusOK, `{"bash": [{"repo": "arch", "binname": "bash"}]}`), nil
		}
		cancel()
		return jsonResponse(http.StatusInternalServerError, ""), nil
	}))

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(ctx, app.ResolveOptions{
		FromFile:   inventory,
		OutputMode: "quiet",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
	assert.ErrorIs(t, err, context.Canceled)

	// The completed prefix still reaches the user.
	assert.Contains(t, env.stdout.String(), "1 PROCESSED, 1 FOUND, 0 NOT FOUND, PARTIAL")
}

func TestApp_Resolve_CIMode(t *testing.T) {
	env := setupAppTest(t, map[string]string{
		"search=bash": `{"bash": [{"repo": "arch", "binname": "bash"}]}`,
	})
	inventory := writeInventory(t, env.tmpDir, "bash")

	env.loader.EXPECT().Load(".").Return(testSettings(env.cacheDir), nil)

	err := env.app.Resolve(context.Background(), app.ResolveOptions{
		FromFile: inventory,
		CI:       true,
	})
	require.NoError(t, err)

	out := env.stdout.String()
	assert.Contains(t, out, "Resolving 1 package(s) for target arch")
	assert.Contains(t, out, "[1/1] bash ✓ bash (network)")
	assert.Contains(t, out, "1 PROCESSED, 1 FOUND, 0 NOT FOUND")
	assert.NotContains(t, out, "\x1b[", "ci output must carry no escape codes")
}

func TestApp_Clean_AllTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := filepath.Join(t.TempDir(), "cache")

	for _, target := range []string{"arch", "alpine"} {
		dir := domain.ResolutionsPath(cacheDir, target)
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bash.json"), []byte("{}"), domain.FilePerm))
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	loader.EXPECT().Load(".").Return(testSettings(cacheDir), nil)
	logger.EXPECT().Info(gomock.Any()).Times(2)

	a := app.New(loader, logger)
	err := a.Clean(context.Background(), app.CleanOptions{})
	require.NoError(t, err)

	assert.NoDirExists(t, domain.ResolutionsRoot(cacheDir))
}

func TestApp_Clean_SingleTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := filepath.Join(t.TempDir(), "cache")

	for _, target := range []string{"arch", "alpine"} {
		dir := domain.ResolutionsPath(cacheDir, target)
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	loader.EXPECT().Load(".").Return(testSettings(cacheDir), nil)
	logger.EXPECT().Info(gomock.Any()).Times(2)

	a := app.New(loader, logger)
	err := a.Clean(context.Background(), app.CleanOptions{Target: "arch"})
	require.NoError(t, err)

	assert.NoDirExists(t, domain.ResolutionsPath(cacheDir, "arch"))
	assert.DirExists(t, domain.ResolutionsPath(cacheDir, "alpine"))
}

func TestApp_Clean_UnknownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := filepath.Join(t.TempDir(), "cache")

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	loader.EXPECT().Load(".").Return(testSettings(cacheDir), nil)

	a := app.New(loader, logger)
	err := a.Clean(context.Background(), app.CleanOptions{Target: "gentoo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownTarget.Error())
}

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crossgrade/crossgrade/internal/app"
	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// The failure must reach the logger
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	application := app.New(mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	// Config load failing simulates execution failure
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve"}, stderr, provider, func(a *app.App) {
		a.WithStdout(io.Discard)
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_ResolutionFailureExitsQuietly verifies that a failed batch returns 1
// without double-logging: the renderer already showed the failure.
func TestRun_ResolutionFailureExitsQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	// No Error expectation: logging the failure here would fail the test.
	mockLogger := mocks.NewMockLogger(ctrl)

	tmp := t.TempDir()
	inventory := filepath.Join(tmp, "packages.txt")
	require.NoError(t, os.WriteFile(inventory, []byte("bash\n"), domain.FilePerm))

	mockLoader.EXPECT().Load(".").Return(&domain.Settings{
		Targets: map[string]domain.Distro{
			"arch": {ID: "arch", Family: domain.FamilyPacman, OfficialRepo: "arch"},
		},
		DefaultTarget:     "arch",
		CacheDir:          filepath.Join(tmp, "cache"),
		CacheTTL:          domain.DefaultCacheTTL,
		LookupBaseURL:     "https://lookup.test",
		LookupMinInterval: 0,
	}, nil)

	application := app.New(mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	// A canceled context aborts the batch before the first lookup.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stderr := new(bytes.Buffer)
	exitCode := run(ctx, []string{"resolve", "--from-file", inventory, "--output", "quiet"}, stderr, provider, func(a *app.App) {
		a.WithStdout(io.Discard)
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// We need a provider that blocks until context is done.
	blockCh := make(chan struct{})

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Settings, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	mockLogger := mocks.NewMockLogger(ctrl)
	// Allow logging of the error when context is canceled
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"resolve"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

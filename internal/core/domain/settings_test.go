package domain_test

import (
	"testing"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_ResolveTarget(t *testing.T) {
	settings := &domain.Settings{
		Targets:       domain.BuiltinDistros(),
		DefaultTarget: "debian",
	}

	t.Run("ExplicitID", func(t *testing.T) {
		d, err := settings.ResolveTarget("arch")
		require.NoError(t, err)
		assert.Equal(t, "arch", d.ID)
	})

	t.Run("FallsBackToDefault", func(t *testing.T) {
		d, err := settings.ResolveTarget("")
		require.NoError(t, err)
		assert.Equal(t, "debian", d.ID)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := settings.ResolveTarget("templeos")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownTarget.Error())
	})

	t.Run("NoDefaultConfigured", func(t *testing.T) {
		bare := &domain.Settings{Targets: domain.BuiltinDistros()}
		_, err := bare.ResolveTarget("")
		assert.ErrorIs(t, err, domain.ErrNoTargetConfigured)
	})
}

func TestSettings_TargetIDs(t *testing.T) {
	settings := &domain.Settings{
		Targets: map[string]domain.Distro{
			"fedora": {ID: "fedora"},
			"arch":   {ID: "arch"},
			"debian": {ID: "debian"},
		},
	}

	assert.Equal(t, []string{"arch", "debian", "fedora"}, settings.TargetIDs())
}

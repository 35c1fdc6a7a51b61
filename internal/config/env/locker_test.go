package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewLockerConfig()
		require.NoError(t, err)

		assert.Equal(t, 12, cfg.Count())
		assert.Equal(t, "UTC", cfg.Location().String())
		assert.Equal(t, "dedicated", cfg.OversizePolicy())
		assert.Equal(t, StorePostgres, cfg.Store())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LOCKER_COUNT", "24")
		t.Setenv("LOCKER_TIMEZONE", "America/Bogota")
		t.Setenv("LOCKER_OVERSIZE_POLICY", "reject")
		t.Setenv("LOCKER_STORE", "memory")

		cfg, err := NewLockerConfig()
		require.NoError(t, err)

		assert.Equal(t, 24, cfg.Count())
		assert.Equal(t, "America/Bogota", cfg.Location().String())
		assert.Equal(t, "reject", cfg.OversizePolicy())
		assert.Equal(t, StoreMemory, cfg.Store())
	})

	for name, env := range map[string][2]string{
		"zero lockers":  {"LOCKER_COUNT", "0"},
		"bad timezone":  {"LOCKER_TIMEZONE", "Mars/Olympus"},
		"unknown store": {"LOCKER_STORE", "redis"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])

			_, err := NewLockerConfig()
			assert.Error(t, err)
		})
	}
}

package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {

	// t.Setenv восстановит значения после теста, пустая переменная не равна отсутствующей
	for _, name := range []string{"LOG_LEVEL", "APP_ENV", "APP_NAME"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	cfg, err := ReadConfigFrom(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestReadConfigFromEnv(t *testing.T) {

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_NAME", "")
	require.NoError(t, os.Unsetenv("APP_NAME"))

	cfg, err := ReadConfigFrom(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "LongHandCalculator", cfg.AppName)
}

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasroos/fcm/pkg/config"
)

type defaultsConfig struct {
	Priority string `env:"FCM_DEFAULTS_PRIORITY" envDefault:"normal"`
	TTL      int    `env:"FCM_DEFAULTS_TTL" envDefault:"600"`
	DryRun   bool   `env:"FCM_DEFAULTS_DRY_RUN" envDefault:"true"`
}

type cachedConfig struct {
	CollapseKey string `env:"FCM_CACHED_COLLAPSE_KEY"`
}

type requiredConfig struct {
	Package string `env:"FCM_REQUIRED_PACKAGE,required"`
}

type fileConfig struct {
	Priority    string `env:"FCM_TEST_PRIORITY"`
	TTL         int    `env:"FCM_TEST_TTL"`
	DryRun      bool   `env:"FCM_TEST_DRY_RUN"`
	Package     string `env:"FCM_TEST_PACKAGE"`
	CollapseKey string `env:"FCM_TEST_COLLAPSE_KEY"`
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	keys := []string{"FCM_TEST_PRIORITY", "FCM_TEST_TTL", "FCM_TEST_DRY_RUN", "FCM_TEST_PACKAGE", "FCM_TEST_COLLAPSE_KEY"}
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})
	config.ResetCache()
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("FCM_DEFAULTS_PRIORITY")
	os.Unsetenv("FCM_DEFAULTS_TTL")
	os.Unsetenv("FCM_DEFAULTS_DRY_RUN")
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "normal", cfg.Priority)
	assert.Equal(t, 600, cfg.TTL)
	assert.True(t, cfg.DryRun)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("FCM_CACHED_COLLAPSE_KEY", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("FCM_CACHED_COLLAPSE_KEY", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.CollapseKey, "second load should be served from cache")

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "second", reloaded.CollapseKey)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("FCM_REQUIRED_PACKAGE")
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("FCM_REQUIRED_PACKAGE", "com.example.app")
	require.NoError(t, config.Load(&cfg), "failed parses must not be cached")
	assert.Equal(t, "com.example.app", cfg.Package)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("FCM_REQUIRED_PACKAGE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		unsetFileVars(t)

		require.NoError(t, config.LoadEnv("testdata/.env.base"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "high", cfg.Priority)
		assert.Equal(t, 3600, cfg.TTL)
		assert.True(t, cfg.DryRun)
		assert.Equal(t, "com.example.app", cfg.Package)
		assert.Empty(t, cfg.CollapseKey)
	})

	t.Run("later files take precedence", func(t *testing.T) {
		unsetFileVars(t)

		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 60, cfg.TTL)
		assert.Equal(t, "updates", cfg.CollapseKey)
		assert.Equal(t, "high", cfg.Priority)
	})

	t.Run("process environment wins", func(t *testing.T) {
		unsetFileVars(t)
		t.Setenv("FCM_TEST_PRIORITY", "normal")

		require.NoError(t, config.LoadEnv("testdata/.env.base"))
		assert.Equal(t, "normal", os.Getenv("FCM_TEST_PRIORITY"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoadEnv(t *testing.T) {
	unsetFileVars(t)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}

package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is an equivalent of testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_without_config_file", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("ENV", "unit")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 10001, cfg.App.Port)
		assert.Equal(t, DefaultAPIBase, cfg.Bunny.APIBase)
		assert.Equal(t, DefaultEmbedBase, cfg.Bunny.EmbedBase)
		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, "memory", cfg.Settings.Backend)
	})

	t.Run("config_file_and_env_overrides", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("ENV", "unit")
		t.Setenv("APP_PORT", "8088")
		t.Setenv("BUNNY_ACCESS_KEY", "from-env")

		body := `{
			"app": {"port": 9000, "siteURL": "https://news.example"},
			"bunny": {"libraryId": "4242", "accessKey": "YOUR_ACCESS_KEY", "apiBase": "https://api.example/"},
			"cache": {"backend": "redis"}
		}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config-unit.json"), []byte(body), 0o600))

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8088, cfg.App.Port)
		assert.Equal(t, "https://news.example", cfg.App.SiteURL)
		assert.Equal(t, "4242", cfg.Bunny.LibraryID)
		assert.Equal(t, "from-env", cfg.Bunny.AccessKey)
		assert.Equal(t, "https://api.example", cfg.Bunny.APIBase)
		assert.Equal(t, "redis", cfg.Cache.Backend)
	})
}

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\n\nexport BV_TEST_ONE=\"one\"\nBV_TEST_TWO='two'\nBV_TEST_KEPT=file\nnot-a-pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("BV_TEST_KEPT", "env")
	t.Setenv("BV_TEST_ONE", "")
	os.Unsetenv("BV_TEST_ONE")
	t.Setenv("BV_TEST_TWO", "")
	os.Unsetenv("BV_TEST_TWO")

	loaded := LoadEnvFromFile(filepath.Join(dir, "missing.env"), path)

	assert.Equal(t, 2, loaded)
	assert.Equal(t, "one", os.Getenv("BV_TEST_ONE"))
	assert.Equal(t, "two", os.Getenv("BV_TEST_TWO"))
	assert.Equal(t, "env", os.Getenv("BV_TEST_KEPT"))
}

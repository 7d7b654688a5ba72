package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_defaults(t *testing.T) {
	req := require.New(t)
	cfg, used, err := Load(New(), "", "")
	req.NoError(err)
	req.Empty(used)
	req.Equal(DefaultConfig(), cfg)
	req.True(cfg.CheckerOptions().SplitDirect)
}

func TestLoad_discoveredFile(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, ".pic.yaml")
	content := `split_direct: false
extensions:
  - .py
  - .pyi
`
	req.NoError(os.WriteFile(configPath, []byte(content), 0644))

	srcDir := filepath.Join(tempDir, "src")
	req.NoError(os.Mkdir(srcDir, 0755))

	cfg, used, err := Load(New(), "", srcDir)
	req.NoError(err)
	req.Equal(configPath, used)
	req.False(cfg.SplitDirect)
	req.Equal([]string{".py", ".pyi"}, cfg.Extensions)
	// Settings absent from the file keep their defaults
	req.Equal(DefaultConfig().ExcludeDirs, cfg.ExcludeDirs)
}

func TestLoad_explicitFile(t *testing.T) {
	req := require.New(t)
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	req.NoError(os.WriteFile(configPath, []byte("check: true\nexclude_dirs: [vendor]\n"), 0644))

	cfg, used, err := Load(New(), configPath, "")
	req.NoError(err)
	req.Equal(configPath, used)
	req.True(cfg.Check)
	req.Equal([]string{"vendor"}, cfg.ExcludeDirs)
}

func TestLoad_missingFile(t *testing.T) {
	req := require.New(t)
	_, _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"), "")
	req.Error(err)
}

func TestLoad_invalidFile(t *testing.T) {
	req := require.New(t)
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	req.NoError(os.WriteFile(configPath, []byte("check: [unclosed\n"), 0644))

	_, _, err := Load(New(), configPath, "")
	req.Error(err)
}

func TestLoad_environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("PIC_SPLIT_DIRECT", "false")
	t.Setenv("PIC_VERBOSE", "true")

	cfg, _, err := Load(New(), "", "")
	req.NoError(err)
	req.False(cfg.SplitDirect)
	req.True(cfg.Verbose)
}

func TestConfig_YAML(t *testing.T) {
	req := require.New(t)
	out, err := DefaultConfig().YAML()
	req.NoError(err)

	var decoded Config
	req.NoError(yaml.Unmarshal([]byte(out), &decoded))
	req.Equal(*DefaultConfig(), decoded)
	req.Contains(out, "split_direct: true")
}

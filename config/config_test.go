package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = `
log:
  defaultLevel: warn
credentials:
  dir: ./keys
  suffix: -sa.json
session:
  defaultAccount: prod
fcm:
  dryRun: true
shell:
  historyFile: /tmp/pushshell_history
  promptPrefix: push
`

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	c, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./keys", c.GetCredentials().Dir)
	assert.Equal(t, "-sa.json", c.GetCredentials().Suffix)
	assert.Equal(t, "prod", c.GetSession().DefaultAccount)
	assert.True(t, c.GetFCM().DryRun)
	assert.Equal(t, "/tmp/pushshell_history", c.GetShell().HistoryFile)
	assert.Equal(t, "push", c.GetShell().PromptPrefix)
}

func TestNewFromFileOrDefault(t *testing.T) {
	c, err := NewFromFileOrDefault(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("credentials: [1, 2"), 0o600))
	_, err = NewFromFileOrDefault(path)
	require.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvProjectId, "env-project")
	t.Setenv(EnvCredentialsDir, "/secrets")
	c := &Config{}
	c.Session.DefaultAccount = "file-project"
	c.ApplyEnv()
	assert.Equal(t, "env-project", c.GetSession().DefaultAccount)
	assert.Equal(t, "/secrets", c.GetCredentials().Dir)
}

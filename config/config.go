package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/anytype-push-shell/credstore"
	"github.com/anyproto/anytype-push-shell/session"
	"github.com/anyproto/anytype-push-shell/shell"
	"github.com/anyproto/anytype-push-shell/transport/fcm"
)

const CName = "config"

const (
	EnvProjectId      = "FIREBASE_PROJECT_ID"
	EnvCredentialsDir = "PUSH_CREDENTIALS_DIR"
)

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

// NewFromFileOrDefault behaves like NewFromFile but returns an empty config when the file does not exist.
func NewFromFileOrDefault(path string) (c *Config, err error) {
	c, err = NewFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return
}

type Config struct {
	Log         logger.Config    `yaml:"log"`
	Credentials credstore.Config `yaml:"credentials"`
	Session     session.Config   `yaml:"session"`
	FCM         fcm.Config       `yaml:"fcm"`
	Shell       shell.Config     `yaml:"shell"`
}

// ApplyEnv overrides file values with the environment, if set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvProjectId); v != "" {
		c.Session.DefaultAccount = v
	}
	if v := os.Getenv(EnvCredentialsDir); v != "" {
		c.Credentials.Dir = v
	}
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetCredentials() credstore.Config {
	return c.Credentials
}

func (c *Config) GetSession() session.Config {
	return c.Session
}

func (c *Config) GetFCM() fcm.Config {
	return c.FCM
}

func (c *Config) GetShell() shell.Config {
	return c.Shell
}

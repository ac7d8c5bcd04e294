package session

type configSource interface {
	GetSession() Config
}

type Config struct {
	// DefaultAccount is the alias or project id activated at startup.
	DefaultAccount string `yaml:"defaultAccount"`
}

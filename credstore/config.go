package credstore

const DefaultSuffix = ".firebase.json"

type configSource interface {
	GetCredentials() Config
}

type Config struct {
	Dir    string `yaml:"dir"`
	Suffix string `yaml:"suffix"`
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	return c
}

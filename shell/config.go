package shell

const DefaultPromptPrefix = "fb"

type configSource interface {
	GetShell() Config
}

type Config struct {
	HistoryFile  string `yaml:"historyFile"`
	PromptPrefix string `yaml:"promptPrefix"`
}

package fcm

type configSource interface {
	GetFCM() Config
}

type Config struct {
	// DryRun validates messages against the backend without delivering them.
	DryRun bool `yaml:"dryRun"`
}

package fcm

type configSource interface {
	GetFCM() Config
}

type Config struct {
	// DryRun validates messages at the gateway without delivering them.
	DryRun bool `yaml:"dryRun"`
}

package cookie

// Config holds the cookie signing keys.
// The first secret signs new cookies, every secret is accepted when verifying, which
// allows rotating keys without logging everybody out.
type Config struct {
	Secrets []string `env:"COOKIE_SECRETS,required" envSeparator:","`
}

// NewFromConfig creates a Manager from cfg. Options override the secure defaults.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(cfg.Secrets, opts...)
}

package totp

// Config holds the environment driven TOTP settings.
type Config struct {
	Issuer string `env:"TOTP_ISSUER" envDefault:"Degree Progression Dashboard"` // Issuer label shown by authenticator apps
}

// NewFromConfig creates a Generator from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Generator {
	configOpts := make([]Option, 0, 1+len(opts))
	if cfg.Issuer != "" {
		configOpts = append(configOpts, WithIssuer(cfg.Issuer))
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

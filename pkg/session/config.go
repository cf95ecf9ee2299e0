package session

import "time"

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"sessionIdentifier"`
	CookieDomain    string        `env:"SESSION_COOKIE_DOMAIN" envDefault:""` // empty: host-only cookie
	SecureCookie    bool          `env:"SESSION_SECURE_COOKIE" envDefault:"true"`
	MaxLifetime     time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"0"` // 0: no server-side expiry
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	Store           string        `env:"SESSION_STORE" envDefault:"memory"`
	RedisKeyPrefix  string        `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
}

func DefaultConfig() Config {
	return Config{
		CookieName:      "sessionIdentifier",
		SecureCookie:    true,
		CleanupInterval: 5 * time.Minute,
		Store:           StoreMemory,
		RedisKeyPrefix:  "session:",
	}
}

// NewFromConfig creates a Manager from cfg. The store and cookie manager are passed as options.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

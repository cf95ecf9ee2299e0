package main

import (
	"errors"

	"github.com/dmitrymomot/progressdash/modules/dashboard"
	"github.com/dmitrymomot/progressdash/pkg/clientip"
	"github.com/dmitrymomot/progressdash/pkg/config"
	"github.com/dmitrymomot/progressdash/pkg/cookie"
	"github.com/dmitrymomot/progressdash/pkg/httpserver"
	"github.com/dmitrymomot/progressdash/pkg/pg"
	"github.com/dmitrymomot/progressdash/pkg/redis"
	"github.com/dmitrymomot/progressdash/pkg/session"
	"github.com/dmitrymomot/progressdash/pkg/totp"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"progressdash"`
}

type settings struct {
	App       appConfig
	HTTP      httpserver.Config
	ClientIP  clientip.Config
	Postgres  pg.Config
	Redis     redis.Config
	Cookie    cookie.Config
	Session   session.Config
	TOTP      totp.Config
	Dashboard dashboard.Config
}

func loadSettings() (settings, error) {
	var s settings
	err := errors.Join(
		config.Load(&s.App),
		config.Load(&s.HTTP),
		config.Load(&s.ClientIP),
		config.Load(&s.Postgres),
		config.Load(&s.Redis),
		config.Load(&s.Cookie),
		config.Load(&s.Session),
		config.Load(&s.TOTP),
		config.Load(&s.Dashboard),
	)
	return s, err
}

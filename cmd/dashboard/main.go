package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/progressdash/db/migrations"
	"github.com/dmitrymomot/progressdash/handler"
	"github.com/dmitrymomot/progressdash/internal/storage/postgres"
	"github.com/dmitrymomot/progressdash/modules/account"
	"github.com/dmitrymomot/progressdash/modules/dashboard"
	"github.com/dmitrymomot/progressdash/pkg/auth"
	"github.com/dmitrymomot/progressdash/pkg/clientip"
	"github.com/dmitrymomot/progressdash/pkg/cookie"
	"github.com/dmitrymomot/progressdash/pkg/environment"
	"github.com/dmitrymomot/progressdash/pkg/httpserver"
	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/pg"
	"github.com/dmitrymomot/progressdash/pkg/redis"
	"github.com/dmitrymomot/progressdash/pkg/requestid"
	"github.com/dmitrymomot/progressdash/pkg/session"
	"github.com/dmitrymomot/progressdash/pkg/status"
	"github.com/dmitrymomot/progressdash/pkg/totp"
)

var (
	buildVersion = "dev" // set by ldflags
	buildCommit  = "none"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.App.Env), cfg.App.Name),
		logger.WithAttr(slog.String("version", buildVersion), slog.String("commit", buildCommit)),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		return fmt.Errorf("dashboard timezone %q: %w", cfg.Dashboard.Timezone, err)
	}

	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()
	db := pg.OpenDB(pool)
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		if err := pg.Migrate(ctx, db, migrations.FS, migrations.Dir, cfg.Postgres, log); err != nil {
			return err
		}
	}

	checks := map[string]httpserver.Check{"postgres": pg.Healthcheck(pool)}

	var store session.Store
	switch cfg.Session.Store {
	case session.StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		store = session.NewRedisStore(redis.NewStorage(client, cfg.Session.RedisKeyPrefix))
		checks["redis"] = redis.Healthcheck(client)
	case session.StoreMemory:
		mem := session.NewMemoryStore(cfg.Session.CleanupInterval)
		defer mem.Close()
		store = mem
	default:
		return fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	sessions := session.NewFromConfig(cfg.Session,
		session.WithStore(store),
		session.WithCookieManager(cookies),
		session.WithLogger(log),
		session.WithDeniedHandler(handler.Denied),
	)

	authn := auth.New(postgres.NewUsers(db), totp.NewFromConfig(cfg.TOTP), auth.WithLogger(log))
	progress := dashboard.NewService(postgres.NewDashboard(db),
		dashboard.WithLocation(loc),
		dashboard.WithLogger(log),
	)

	api := account.Router(account.NewLoginService(authn, sessions, log),
		account.Mount{Pattern: "/dashboard", Handler: dashboard.NewHandler(progress, sessions, log).Handle()},
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.ClientIP.TrustedHeaders...),
		handler.RequestLogger(log),
	)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, checks))
	r.Mount("/api", api)

	// Deferred closes run after Run has drained in-flight requests.
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = handler.Status(status.Error, nil, handler.WithHTTPStatus(http.StatusNotFound)).Render(w, r)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = handler.Status(status.Error, nil, handler.WithHTTPStatus(http.StatusMethodNotAllowed)).Render(w, r)
}

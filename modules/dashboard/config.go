package dashboard

// Config configures the dashboard module.
type Config struct {
	// Timezone the human readable due date is rendered in (IANA name).
	Timezone string `env:"DASHBOARD_TIMEZONE" envDefault:"UTC"`
}

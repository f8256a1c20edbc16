package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabaseURL string `env:"DATABASE_URL" envDefault:"bookbound.db"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3002"`
	UploadsDir  string `env:"UPLOADS_DIR" envDefault:"uploads"`

	Bank Bank `envPrefix:"BANK_"`
	JWT  JWT  `envPrefix:"JWT_"`
}

// Bank points at the external payment service the buyer is redirected to.
type Bank struct {
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:6002"`
	AccountNo string `env:"ACCOUNT_NO" envDefault:"123456789"`
}

type JWT struct {
	Secret   string `env:"SECRET" envDefault:"dev-secret"`
	TTLHours int    `env:"TTL_HOURS" envDefault:"72"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"5000"`
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Session    Session    `yaml:"session"`
	Schedule   Schedule   `yaml:"schedule"`
	Redis      Redis      `yaml:"redis"`
	Storefront Storefront `yaml:"storefront"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials" env-default:"true"`
}

// Backend points at the remote order-management API.
type Backend struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"8s"`
}

type Session struct {
	CookieName    string        `yaml:"cookie_name" env-default:"storefront_session"`
	Secret        string        `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
	TTL           time.Duration `yaml:"ttl" env-default:"2h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
	Secure        bool          `yaml:"secure"`
}

type Schedule struct {
	Timezone       string        `yaml:"timezone" env:"SCHEDULE_TIMEZONE" env-default:"America/Bogota"`
	LoadingTimeout time.Duration `yaml:"loading_timeout" env-default:"3s"`
}

// Redis is optional: an empty address disables the branding cache.
type Redis struct {
	Address     string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db" env-default:"0"`
	BrandingTTL time.Duration `yaml:"branding_ttl" env-default:"5m"`
}

type Storefront struct {
	DefaultTheme   Theme  `yaml:"default_theme"`
	SupportMessage string `yaml:"support_message" env-default:"Hola, acabo de hacer un pedido y me gustaría obtener más información sobre mi orden. ¡Gracias!"`
}

type Theme struct {
	Primary     string `yaml:"primary" env-default:"#5E55FF"`
	Secondary   string `yaml:"secondary" env-default:"#5E55FE"`
	CustomLight string `yaml:"custom_light" env-default:"#e2dac7"`
	CustomDark  string `yaml:"custom_dark" env-default:"#333"`
	CustomHover string `yaml:"custom_hover" env-default:"#9541f7"`
}

func MustLoad() *Config {
	// a missing .env is fine outside local development
	_ = godotenv.Load()

	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

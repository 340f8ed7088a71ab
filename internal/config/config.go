package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Payment    Payment    `yaml:"payment"`
	Redis      Redis      `yaml:"redis"`
	Notifier   Notifier   `yaml:"notifier"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Booking    Booking    `yaml:"booking"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"meetease"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"meetease"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

type Payment struct {
	OmisePublicKey string        `yaml:"omise_public_key" env:"OMISE_PUBLIC_KEY"`
	OmiseSecretKey string        `yaml:"omise_secret_key" env:"OMISE_SECRET_KEY"`
	Amount         int64         `yaml:"amount" env-default:"1000"`
	Currency       string        `yaml:"currency" env-default:"usd"`
	GatewayTimeout time.Duration `yaml:"gateway_timeout" env-default:"10s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Address string `yaml:"address" env-default:"localhost:6379"`
	DB      int    `yaml:"db" env-default:"0"`
}

type Notifier struct {
	BufferSize int `yaml:"buffer_size" env-default:"16"`
}

type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"20"`
	Burst int     `yaml:"burst" env-default:"40"`
}

type Booking struct {
	// VerifyPayments makes the finalizer re-check the gateway's terminal
	// status before committing, instead of trusting the caller's reference.
	VerifyPayments bool `yaml:"verify_payments" env-default:"false"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	Addr        string `env:"ADDR" env-default:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	DBMaxOpenConns           int `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	DBMaxIdleConns           int `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	DBConnMaxLifetimeSeconds int `env:"DB_CONN_MAX_LIFETIME_SECONDS" env-default:"300"`
	DBConnMaxIdleTimeSeconds int `env:"DB_CONN_MAX_IDLE_SECONDS" env-default:"60"`

	// RoomTTLHours caps how long a room may stay open before the
	// maintenance sweep closes it.
	RoomTTLHours int `env:"ROOM_TTL_HOURS" env-default:"2"`

	// HigherLowerDeckSize is the exclusive upper bound of the numeric deck.
	HigherLowerDeckSize int `env:"HIGHER_LOWER_DECK_SIZE" env-default:"1000"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) RoomTTL() time.Duration {
	hours := c.RoomTTLHours
	if hours <= 0 {
		hours = 2
	}
	return time.Duration(hours) * time.Hour
}

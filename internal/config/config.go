package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Log     *Log
		Metrics *Metrics
	}

	App struct {
		Name string
		Env  string
	}

	Log struct {
		Level string
	}

	Metrics struct {
		Namespace string
	}
)

// New reads the environment after loading envFiles (".env" when none are
// given). Env files are skipped in production and missing ones are ignored.
func New(envFiles ...string) (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "webike-rental"),
		Env:  getEnv("APP_ENV", "development"),
	}

	log := &Log{
		Level: os.Getenv("LOG_LEVEL"),
	}

	metrics := &Metrics{
		Namespace: getEnv("METRICS_NAMESPACE", "webike_rental"),
	}

	return &Container{
		App:     app,
		Log:     log,
		Metrics: metrics,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

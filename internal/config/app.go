package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = readAppConfig()
	})
	return appConfig
}

// readAppConfig accepts the NODE_ENV / NEXT_PUBLIC_APP_URL names used by the
// web frontend when the APP_* variables are not set.
func readAppConfig() *AppConfig {
	env := firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"))
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = ":8080"
	}
	baseURL := firstNonEmpty(os.Getenv("APP_URL"), os.Getenv("NEXT_PUBLIC_APP_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	name := os.Getenv("APP_NAME")
	if name == "" {
		name = "Hire Wise"
	}
	return &AppConfig{
		Name:    name,
		Env:     env,
		Port:    port,
		BaseURL: baseURL,
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

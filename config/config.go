package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the process configuration, sourced from the environment.
type Settings struct {
	Addr        string
	DatabaseURL string
	CORSOrigins []string
}

// Load reads a .env file if one exists, then the environment.
// CORS_ORIGINS is a comma-separated allow-list; empty means permissive.
func Load() Settings {
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return Settings{
		Addr:        ":" + port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: origins,
	}
}

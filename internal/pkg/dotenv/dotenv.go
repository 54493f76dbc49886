package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// ErrNoEnvFile возвращается Load, если файла нет. Вызывающий решает, фатально ли это.
var ErrNoEnvFile = errors.New("env file not found")

// Load читает переменные из файла path. Уже заданные переменные окружения не перезаписываются.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoEnvFile
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyFlags разбирает флаги командной строки и переносит заданные значения в окружение,
// чтобы config.Load видел их с наивысшим приоритетом.
func ApplyFlags(name string, args []string) error {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		port     string
		logLevel string
		noSeed   bool
	)
	fset.StringVar(&port, "port", "", "Server port (overrides PORT environment variable)")
	fset.StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	fset.BoolVar(&noSeed, "no-seed", false, "Skip demo data seeding (sets SEED_DISABLED=true)")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{}
	if port != "" {
		overrides["PORT"] = port
	}
	if logLevel != "" {
		overrides["LOG_LEVEL"] = logLevel
	}
	if noSeed {
		overrides["SEED_DISABLED"] = "true"
	}

	for key, value := range overrides {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}

package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by all commands.
type Config struct {
	BookFile string
	Currency string
	Verbose  bool
}

// LoadConfig reads the environment, and a .env file if present, then
// applies the global flags on top.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		BookFile: getEnv("SKS_BOOK_FILE", "book.jsonl"),
		Currency: getEnv("SKS_CURRENCY", ""),
		Verbose:  getEnvBool("SKS_VERBOSE", false),
	}

	if *bookFlag != "" {
		cfg.BookFile = *bookFlag
	}
	if *currencyFlag != "" {
		cfg.Currency = *currencyFlag
	}
	if *verboseFlag {
		cfg.Verbose = true
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

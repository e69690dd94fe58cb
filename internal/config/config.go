package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

type Config struct {
	BoardColumns       int
	BoardRows          int
	CleanupInterval    time.Duration
	FinishedSessionTTL time.Duration
	IdleSessionTTL     time.Duration
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick
// up a .env file.
func LoadConfig() *Config {
	columns := GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns)
	rows := GetEnvAsInt("BOARD_ROWS", domain.DefaultRows)

	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 60)
	finishedTTLMin := GetEnvAsInt("FINISHED_SESSION_TTL_MINUTES", 60)
	idleTTLHours := GetEnvAsInt("IDLE_SESSION_TTL_HOURS", 24)

	return &Config{
		BoardColumns:       columns,
		BoardRows:          rows,
		CleanupInterval:    time.Duration(cleanupIntervalMin) * time.Minute,
		FinishedSessionTTL: time.Duration(finishedTTLMin) * time.Minute,
		IdleSessionTTL:     time.Duration(idleTTLHours) * time.Hour,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

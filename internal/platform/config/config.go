// Package config reads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Server captures the full service configuration so main stays lean.
type Server struct {
	Addr             string
	CustomersFile    string
	DocumentDir      string
	PreApprovedLimit int64
	PostgresURL      string
	RedisURL         string
	KafkaBrokers     []string
	AuditTopic       string
}

// FromEnv builds a Server config from environment variables. Every field has
// a development default; Postgres, Redis and Kafka are opt-in and the service
// falls back to in-process equivalents when their URLs are absent.
func FromEnv() Server {
	cfg := Server{
		Addr:             getEnv("LOAN_GATEWAY_ADDR", ":8080"),
		CustomersFile:    getEnv("CUSTOMERS_FILE", "data/customers.json"),
		DocumentDir:      getEnv("DOCUMENT_DIR", "tmp"),
		PreApprovedLimit: getEnvInt64("PRE_APPROVED_LIMIT", 100000),
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		AuditTopic:       getEnv("AUDIT_TOPIC", "loan-gateway.audit"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

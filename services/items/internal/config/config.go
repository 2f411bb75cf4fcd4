package config

import (
	"os"

	pkgcfg "github.com/feirinha/feirinha/pkg/config"
)

type Config struct {
	ServiceName  string
	ServerPort   int
	DatabaseURL  string
	KafkaBrokers []string
	KafkaTopic   string
}

func Load() Config {
	return Config{
		ServiceName:  pkgcfg.EnvDefault("SERVICE_NAME", "items"),
		ServerPort:   pkgcfg.EnvIntDefault("SERVER_PORT", 8000),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   pkgcfg.EnvDefault("KAFKA_TOPIC", "produto_events"),
	}
}

package config

import (
	"os"

	pkgcfg "github.com/feirinha/feirinha/pkg/config"
)

type Config struct {
	ServiceName  string
	ServerPort   int
	DatabaseURL  string
	ItemsAPIURL  string
	KafkaBrokers []string
	KafkaTopic   string
}

func Load() Config {
	return Config{
		ServiceName:  pkgcfg.EnvDefault("SERVICE_NAME", "basket"),
		ServerPort:   pkgcfg.EnvIntDefault("SERVER_PORT", 8001),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ItemsAPIURL:  pkgcfg.EnvDefault("ITEMS_API_URL", "http://localhost:8000/api/produtos/"),
		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   pkgcfg.EnvDefault("KAFKA_TOPIC", "basket_events"),
	}
}

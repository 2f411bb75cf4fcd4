package config

import (
	"os"

	pkgcfg "github.com/feirinha/feirinha/pkg/config"
)

type Config struct {
	ListenAddr string
	ItemsURL   string
	BasketURL  string
}

func Load() Config {
	cfg := Config{
		ListenAddr: pkgcfg.EnvDefault("LISTEN_ADDR", ":8080"),
		ItemsURL:   os.Getenv("ITEMS_URL"),
		BasketURL:  os.Getenv("BASKET_URL"),
	}
	pkgcfg.MustNonEmpty(cfg.ItemsURL, "ITEMS_URL")
	pkgcfg.MustNonEmpty(cfg.BasketURL, "BASKET_URL")
	return cfg
}

package impl

import (
	"io"
	"log/slog"

	"vidtube/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4},
		Catalog: &config.CatalogConfig{DefaultLimit: 10, MaxLimit: 100},
		Views:   &config.ViewsConfig{},
	}
}

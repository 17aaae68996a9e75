package config

import "os"

// Config carries the process-level settings every entry point needs.
type Config struct {
	Port        string
	DBDriver    string
	DBDSN       string
	CatalogPath string
	AutoMigrate bool
}

// FromEnv builds a Config from environment variables, with sane defaults.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	driver := os.Getenv("BOILERQUOTE_DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("BOILERQUOTE_DB_DSN")
	if dsn == "" {
		dsn = "boilerquote.db"
	}
	auto := os.Getenv("BOILERQUOTE_AUTO_MIGRATE")
	return Config{
		Port:        port,
		DBDriver:    driver,
		DBDSN:       dsn,
		CatalogPath: os.Getenv("BOILERQUOTE_CATALOG_PATH"),
		AutoMigrate: auto == "1" || auto == "true" || auto == "yes",
	}
}

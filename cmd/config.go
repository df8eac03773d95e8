package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DemandAPIURL      string
	VendorAPIURL      string
	DemandRefreshSpec string
}

// UsesPostgres reports whether database connection settings were provided.
// Without them the service runs on the in-memory key-value store.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

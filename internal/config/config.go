package config

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Storage  StorageConfig  `env-prefix:"STORAGE_"`
	Database DatabaseConfig `env-prefix:"DB_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8080"`
}

// StorageConfig selects the repository backend. The memory backend is
// volatile and process-local; postgres persists across restarts.
type StorageConfig struct {
	Backend string `env:"BACKEND" env-default:"memory"`
}

type DatabaseConfig struct {
	Port     string `env:"PORT" env-default:"5432"`
	Host     string `env:"HOST" env-default:"localhost"`
	Name     string `env:"NAME" env-default:"daybook"`
	User     string `env:"USER" env-default:"daybook"`
	Password string `env:"PASSWORD"`
}

func (c DatabaseConfig) Addr() string {
	return c.Host + ":" + c.Port
}

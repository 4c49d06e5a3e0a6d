package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends remotos soportados.
const (
	BackendPostgREST = "postgrest"
	BackendPostgres  = "postgres"
	BackendNone      = "none"
)

// Drivers del espejo local.
const (
	MirrorMemory = "memory"
	MirrorSQLite = "sqlite"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Remote  RemoteConfig
	DB      DBConfig
	Storage StorageConfig
	Mirror  MirrorConfig
	Assets  AssetsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// RemoteConfig backend remoto de las colecciones.
type RemoteConfig struct {
	Backend     string // postgrest | postgres | none
	SupabaseURL string
	SupabaseKey string
	Timeout     time.Duration
}

// DBConfig configuración de PostgreSQL (solo para REMOTE_BACKEND=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	ForceIPv4   bool // Docker suele no tener IPv6 y Supabase puede resolver solo AAAA
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// StorageConfig modo de almacenamiento inicial y archivo de preferencias compartido.
type StorageConfig struct {
	Mode      string // local | remote
	PrefsPath string // vacío = ruta por defecto del usuario
}

// MirrorConfig espejo local de las colecciones.
type MirrorConfig struct {
	Driver     string // memory | sqlite
	Path       string
	Namespace  string
	QuotaBytes int
}

// AssetsConfig hosts cuyas URLs absolutas de imagen se conservan tal cual.
type AssetsConfig struct {
	TrustedHosts []string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// .env opcional: sus valores quedan por debajo de las variables de entorno.
	if vars, err := godotenv.Read(".env"); err == nil {
		for key, val := range vars {
			v.SetDefault(key, val)
		}
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mebel-store"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Remote: RemoteConfig{
			Backend:     strings.ToLower(getString(v, "REMOTE_BACKEND", BackendPostgREST)),
			SupabaseURL: getString(v, "SUPABASE_URL", ""),
			SupabaseKey: getString(v, "SUPABASE_KEY", ""),
			Timeout:     time.Duration(getInt(v, "REMOTE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "mebel"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 8),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", true),
		},
		Storage: StorageConfig{
			Mode:      strings.ToLower(getString(v, "STORAGE_MODE", "remote")),
			PrefsPath: getString(v, "PREFS_PATH", ""),
		},
		Mirror: MirrorConfig{
			Driver:     strings.ToLower(getString(v, "MIRROR_DRIVER", MirrorMemory)),
			Path:       getString(v, "MIRROR_PATH", "mebel-mirror.db"),
			Namespace:  getString(v, "MIRROR_NAMESPACE", "mebel"),
			QuotaBytes: getInt(v, "MIRROR_QUOTA_BYTES", 5*1024*1024),
		},
		Assets: AssetsConfig{
			TrustedHosts: splitList(getString(v, "ASSETS_TRUSTED_HOSTS", "")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Remote.Backend {
	case BackendPostgREST, BackendPostgres, BackendNone:
	default:
		return fmt.Errorf("config: REMOTE_BACKEND desconocido %q", c.Remote.Backend)
	}
	switch c.Mirror.Driver {
	case MirrorMemory, MirrorSQLite:
	default:
		return fmt.Errorf("config: MIRROR_DRIVER desconocido %q", c.Mirror.Driver)
	}
	if c.Storage.Mode != "local" && c.Storage.Mode != "remote" {
		return fmt.Errorf("config: STORAGE_MODE debe ser local o remote, no %q", c.Storage.Mode)
	}
	if c.Remote.Backend == BackendPostgREST && c.Remote.SupabaseURL == "" {
		// Sin URL no hay backend: se opera solo en local.
		c.Remote.Backend = BackendNone
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) || strings.TrimSpace(v.GetString(key)) == "" {
		return def
	}
	return v.GetBool(key)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

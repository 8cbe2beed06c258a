package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Remote RemoteConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	ShopName string // nombre del local, aparece en los PDF
}

// HTTPConfig configuración del servidor HTTP del panel.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RemoteConfig configuración del API remoto de la cafetería.
type RemoteConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición hacia el API remoto.
func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, REMOTE_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "cafeteria-panel"),
			ShopName: getString(v, "APP_SHOP_NAME", "Cafetería"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		Remote: RemoteConfig{
			BaseURL:        getString(v, "REMOTE_API_URL", "http://localhost:8000"),
			TimeoutSeconds: getInt(v, "REMOTE_TIMEOUT_SECONDS", 15),
		},
	}

	if cfg.Remote.BaseURL == "" {
		return nil, fmt.Errorf("config: REMOTE_API_URL requerido")
	}
	return cfg, nil
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
			// Un valor no numérico no se convierte en cero: se usa el defecto.
			n, err := strconv.Atoi(v.GetString(key))
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

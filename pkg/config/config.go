package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Dataset     DatasetConfig
	Leaderboard LeaderboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string `validate:"required"` // development, staging, production
	Name           string `validate:"required"`
	LogLevel       string `validate:"oneof=trace debug info warn error"`
	SwaggerEnabled bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int `validate:"gt=0,lte=65535"`
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetConfig origen del export de movimientos. Se valida al arrancar: sin dataset no
// hay painel.
type DatasetConfig struct {
	Path         string   `validate:"required"`
	Delimiter    string   `validate:"required"`                // exactamente un carácter
	Encoding     string   `validate:"required"`                // latin1, utf-8, windows-1252, ...
	DateLayouts  []string `validate:"omitempty,dive,required"` // vacío = formatos por defecto de la limpieza
	DecimalComma bool     // "1.234,5" en la columna Qtd; el punto sólo vale como separador de miles
}

// DelimiterRune devuelve el delimitador como rune (válido tras Validate).
func (c DatasetConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// LeaderboardConfig tamaño del ranking.
type LeaderboardConfig struct {
	Size int `validate:"gt=0,lte=1000"`
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATASET_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "painel-movimentos"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			SwaggerEnabled: getBool(v, "SWAGGER_ENABLED", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Dataset: DatasetConfig{
			Path:         getString(v, "DATASET_PATH", ""),
			Delimiter:    getString(v, "DATASET_DELIMITER", ";"),
			Encoding:     getString(v, "DATASET_ENCODING", "latin1"),
			DateLayouts:  getList(v, "DATASET_DATE_LAYOUTS", nil),
			DecimalComma: getBool(v, "DATASET_DECIMAL_COMMA", false),
		},
		Leaderboard: LeaderboardConfig{
			Size: getInt(v, "LEADERBOARD_SIZE", 20),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba la configuración completa y devuelve todos los problemas juntos.
func (c *Config) Validate() error {
	var problems []string
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
	}
	if c.Dataset.Delimiter != "" && utf8.RuneCountInString(c.Dataset.Delimiter) != 1 {
		problems = append(problems, fmt.Sprintf("Config.Dataset.Delimiter (%q: debe ser un único carácter)", c.Dataset.Delimiter))
	}
	if len(problems) > 0 {
		return fmt.Errorf("config inválida: %s", strings.Join(problems, "; "))
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
				return 0 // lo rechaza Validate
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// getList separa por comas; los elementos vacíos se descartan.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, s := range strings.Split(v.GetString(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del bot.
type Config struct {
	Bot    BotConfig    `yaml:"bot"`
	RPC    RPCConfig    `yaml:"rpc"`
	Price  PriceConfig  `yaml:"price"`
	Notify NotifyConfig `yaml:"notify"`
	Log    LogConfig    `yaml:"log"`
}

// BotConfig controla el comportamiento del bot.
type BotConfig struct {
	// Token del Bot API. Nunca va en el YAML: solo TELEGRAM_BOT_TOKEN.
	Token              string `yaml:"-"`
	DefaultPair        string `yaml:"default_pair"`
	SignatureLimit     int    `yaml:"signature_limit"`
	PollTimeoutSeconds int    `yaml:"poll_timeout_seconds"`
}

// RPCConfig apunta al nodo Solana.
type RPCConfig struct {
	BaseURL string `yaml:"base_url"`
}

// PriceConfig apunta al market-data API.
type PriceConfig struct {
	BaseURL string `yaml:"base_url"`
}

// NotifyConfig controla la notificación demo de arranque.
// Con Message vacío no se agenda nada.
type NotifyConfig struct {
	Message      string `yaml:"message"`
	DelaySeconds int    `yaml:"delay_seconds"`
	// ChatID destino en modo Telegram; en modo consola se ignora y la
	// notificación va a la sesión local.
	ChatID string `yaml:"chat_id"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Las variables de entorno sobreescriben el YAML.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// PollTimeout devuelve el timeout del long-poll como time.Duration.
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Bot.PollTimeoutSeconds) * time.Second
}

// NotifyDelay devuelve el retraso de la notificación de arranque.
func (c *Config) NotifyDelay() time.Duration {
	return time.Duration(c.Notify.DelaySeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("SOLANA_RPC_URL"); v != "" {
		cfg.RPC.BaseURL = v
	}
	if v := os.Getenv("PRICE_API_URL"); v != "" {
		cfg.Price.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Bot.DefaultPair == "" {
		cfg.Bot.DefaultPair = "SOL/USDC"
	}
	if cfg.Bot.SignatureLimit <= 0 {
		cfg.Bot.SignatureLimit = 5
	}
	if cfg.Bot.PollTimeoutSeconds <= 0 {
		cfg.Bot.PollTimeoutSeconds = 30
	}
	if cfg.RPC.BaseURL == "" {
		cfg.RPC.BaseURL = "https://api.mainnet-beta.solana.com"
	}
	if cfg.Price.BaseURL == "" {
		cfg.Price.BaseURL = "https://price.jup.ag/v6"
	}
	if cfg.Notify.DelaySeconds <= 0 {
		cfg.Notify.DelaySeconds = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

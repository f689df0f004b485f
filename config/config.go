package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionCookieName  = "showcase_session"
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultPasswordResetPath  = "/reset-password"
	defaultInviteTTL          = 72 * time.Hour
	defaultDeletionRetryCron  = "@every 5m"
	defaultMaxDeletionTries   = 10
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		// TrustedProxies lists CIDR ranges whose X-Forwarded-For is believed.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Supabase points at the hosted auth service.
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Site *SiteConfig `json:"site" yaml:"site"`

	Invite *InviteConfig `json:"invite" yaml:"invite"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for business share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the session store connection
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Username    string        `json:"username" yaml:"username"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// SupabaseConfig defines the hosted auth service endpoint and keys
type SupabaseConfig struct {
	URL            string        `json:"url" yaml:"url"`
	AnonKey        string        `json:"anonKey" yaml:"anonKey"`
	ServiceRoleKey string        `json:"serviceRoleKey" yaml:"serviceRoleKey"`
	JWTSecret      string        `json:"jwtSecret" yaml:"jwtSecret"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the session cookie
type SessionConfig struct {
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	TTL          time.Duration `json:"ttl" yaml:"ttl"`
	Secure       bool          `json:"secure" yaml:"secure"`
	SameSite     string        `json:"sameSite" yaml:"sameSite"`
	RefreshSkew  time.Duration `json:"refreshSkew" yaml:"refreshSkew"`
	CookieDomain string        `json:"cookieDomain" yaml:"cookieDomain"`
}

// SiteConfig describes the public front end
type SiteConfig struct {
	PublicURL         string `json:"publicUrl" yaml:"publicUrl"`
	PasswordResetPath string `json:"passwordResetPath" yaml:"passwordResetPath"`
	// EmbedOrigin is passed to embedded video players; defaults to PublicURL.
	EmbedOrigin string `json:"embedOrigin" yaml:"embedOrigin"`
}

// InviteConfig defines admin invite code settings
type InviteConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	DefaultTTL time.Duration `json:"defaultTtl" yaml:"defaultTtl"`
}

// RateLimitConfig bounds unauthenticated auth endpoints per client IP
type RateLimitConfig struct {
	Login struct {
		RPS       float64       `json:"rps" yaml:"rps"`
		Burst     int           `json:"burst" yaml:"burst"`
		ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
	} `json:"login" yaml:"login"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local", "google" or "amqp"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ connection (for amqp provider)
	AMQPURL  string `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange string `json:"exchange" yaml:"exchange"`
}

// WorkerConfig defines the event worker
type WorkerConfig struct {
	Port     int `json:"port" yaml:"port"`
	PushAuth struct {
		Enabled             bool   `json:"enabled" yaml:"enabled"`
		Audience            string `json:"audience" yaml:"audience"`
		ServiceAccountEmail string `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
	} `json:"pushAuth" yaml:"pushAuth"`
	DeletionRetryCron   string `json:"deletionRetryCron" yaml:"deletionRetryCron"`
	MaxDeletionAttempts int    `json:"maxDeletionAttempts" yaml:"maxDeletionAttempts"`
	DeletionBatchSize   int    `json:"deletionBatchSize" yaml:"deletionBatchSize"`
}

// MigrationsConfig controls SQL migrations on start
type MigrationsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SUPABASE_SERVICEROLEKEY -> supabase.serviceRoleKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
		cfg.Postgres.Replicas = replicas
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.RefreshSkew <= 0 {
		cfg.Session.RefreshSkew = time.Minute
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	cfg.Site.PublicURL = strings.TrimRight(cfg.Site.PublicURL, "/")
	if cfg.Site.PasswordResetPath == "" {
		cfg.Site.PasswordResetPath = defaultPasswordResetPath
	}
	if cfg.Site.EmbedOrigin == "" {
		cfg.Site.EmbedOrigin = cfg.Site.PublicURL
	}

	if cfg.Invite == nil {
		cfg.Invite = &InviteConfig{}
	}
	if cfg.Invite.DefaultTTL <= 0 {
		cfg.Invite.DefaultTTL = defaultInviteTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.DeletionRetryCron == "" {
		cfg.Worker.DeletionRetryCron = defaultDeletionRetryCron
	}
	if cfg.Worker.MaxDeletionAttempts <= 0 {
		cfg.Worker.MaxDeletionAttempts = defaultMaxDeletionTries
	}
	if cfg.Worker.DeletionBatchSize <= 0 {
		cfg.Worker.DeletionBatchSize = 50
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

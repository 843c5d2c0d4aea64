package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultConnectTimeout     = 10 * time.Second
	defaultMaxUploadSize      = 5 << 20
	defaultRateLimitPerSecond = 1
	defaultRateLimitBurst     = 5
	defaultRateLimitExpiresIn = 3 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Mongo MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Media MediaConfig `json:"media" yaml:"media"`
}

// HTTPConfig defines the listener, cookie and rate limit settings.
type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	Cookie    CookieConfig    `json:"cookie" yaml:"cookie"`
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	// AllowOrigins lists the CORS origins allowed to send credentials.
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// CookieConfig controls the attributes of the token cookies.
type CookieConfig struct {
	Secure   bool   `json:"secure" yaml:"secure"`
	SameSite string `json:"sameSite" yaml:"sameSite"` // lax, strict or none
	Domain   string `json:"domain" yaml:"domain"`
}

// RateLimitConfig limits unauthenticated credential endpoints per client IP.
type RateLimitConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	PerSecond float64       `json:"perSecond" yaml:"perSecond"`
	Burst     int           `json:"burst" yaml:"burst"`
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// TokenConfig defines token lifetimes.
type TokenConfig struct {
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// MediaConfig defines where uploaded images are stored and how they are addressed.
type MediaConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. s3://bucket?region=us-east-1 or file:///var/media.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicBaseURL is prefixed to object keys to build the URL stored on the user.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
	AvatarFolder  string `json:"avatarFolder" yaml:"avatarFolder"`
	CoverFolder   string `json:"coverFolder" yaml:"coverFolder"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file.
	// Example: MONGO_URI -> mongo.uri, SECRETKEY_ACCESS -> secretKey.access
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Token.AccessTTL <= 0 {
		cfg.Token.AccessTTL = defaultAccessTTL
	}
	if cfg.Token.RefreshTTL <= 0 {
		cfg.Token.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.Media.MaxUploadSize <= 0 {
		cfg.Media.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Media.AvatarFolder == "" {
		cfg.Media.AvatarFolder = "avatars"
	}
	if cfg.Media.CoverFolder == "" {
		cfg.Media.CoverFolder = "covers"
	}
	if cfg.HTTP.Cookie.SameSite == "" {
		cfg.HTTP.Cookie.SameSite = "lax"
	}
	if cfg.HTTP.RateLimit.PerSecond <= 0 {
		cfg.HTTP.RateLimit.PerSecond = defaultRateLimitPerSecond
	}
	if cfg.HTTP.RateLimit.Burst <= 0 {
		cfg.HTTP.RateLimit.Burst = defaultRateLimitBurst
	}
	if cfg.HTTP.RateLimit.ExpiresIn <= 0 {
		cfg.HTTP.RateLimit.ExpiresIn = defaultRateLimitExpiresIn
	}
}

// Validate reports settings the service cannot start without.
func (cfg *Config) Validate() error {
	if cfg.Mongo.URI == "" || cfg.Mongo.Database == "" {
		return errors.New("mongo uri and database must be provided")
	}
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return errors.New("access and refresh secrets must be provided")
	}
	if cfg.Media.BucketURL == "" {
		return errors.New("media bucket url must be provided")
	}

	return nil
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

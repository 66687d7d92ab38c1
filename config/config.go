package config

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64MB"
	defaultCatalogLimit       = 10
	defaultCatalogMaxLimit    = 100
	defaultSideEffectTimeout  = 5 * time.Second
	defaultMongoQueryTimeout  = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
		// TrustedProxies are CIDRs whose X-Forwarded-For is believed. Empty means the
		// client IP is always the socket peer.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Views *ViewsConfig `json:"views" yaml:"views"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig describes the document store connection.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	QueryTimeout   time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// TokenConfig is the signing configuration handed to the token service.
// Access and refresh tokens use distinct secrets and expiries.
type TokenConfig struct {
	AccessSecret  string        `json:"accessSecret" yaml:"accessSecret"`
	AccessExpiry  time.Duration `json:"accessExpiry" yaml:"accessExpiry"`
	RefreshSecret string        `json:"refreshSecret" yaml:"refreshSecret"`
	RefreshExpiry time.Duration `json:"refreshExpiry" yaml:"refreshExpiry"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost             int  `json:"bcryptCost" yaml:"bcryptCost"`
	RevokeOnPasswordChange bool `json:"revokeOnPasswordChange" yaml:"revokeOnPasswordChange"`
}

// CookieConfig controls the attributes of the session cookies.
// Cookies are always HttpOnly and Secure.
type CookieConfig struct {
	// SameSite is one of lax, strict or none.
	SameSite string `json:"sameSite" yaml:"sameSite"`
	Path     string `json:"path" yaml:"path"`
}

// StorageConfig selects and configures the blob store provider.
type StorageConfig struct {
	// Provider is "bucket" (gocloud.dev URL) or "s3" (direct AWS SDK uploader).
	Provider      string   `json:"provider" yaml:"provider"`
	BucketURL     string   `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string   `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	TempDir       string   `json:"tempDir" yaml:"tempDir"`
	S3            S3Config `json:"s3" yaml:"s3"`
}

type S3Config struct {
	Region       string `json:"region" yaml:"region"`
	Bucket       string `json:"bucket" yaml:"bucket"`
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	UsePathStyle bool   `json:"usePathStyle" yaml:"usePathStyle"`
}

// RateLimitConfig guards the credential endpoints.
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	TTL               time.Duration `json:"ttl" yaml:"ttl"`
}

type CatalogConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// ViewsConfig bounds the best-effort side effects of a video detail read.
type ViewsConfig struct {
	SideEffectTimeout time.Duration `json:"sideEffectTimeout" yaml:"sideEffectTimeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// TOKEN_ACCESSSECRET -> token.accessSecret, aligned with the YAML key casing.
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

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
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
	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.QueryTimeout <= 0 {
		cfg.Mongo.QueryTimeout = defaultMongoQueryTimeout
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{}
	}
	if cfg.Cookie.SameSite == "" {
		cfg.Cookie.SameSite = "lax"
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "bucket"
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.DefaultLimit <= 0 {
		cfg.Catalog.DefaultLimit = defaultCatalogLimit
	}
	if cfg.Catalog.MaxLimit <= 0 {
		cfg.Catalog.MaxLimit = defaultCatalogMaxLimit
	}
	if cfg.Views == nil {
		cfg.Views = &ViewsConfig{}
	}
	if cfg.Views.SideEffectTimeout <= 0 {
		cfg.Views.SideEffectTimeout = defaultSideEffectTimeout
	}
}

// Validate rejects configurations the service cannot run with.
func (cfg *Config) Validate() error {
	if err := cfg.Token.Validate(); err != nil {
		return err
	}
	if cfg.Auth != nil && (cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost) {
		return errors.Errorf("auth.bcryptCost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	for _, cidr := range cfg.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(strings.TrimSpace(cidr)); err != nil {
			return errors.Wrapf(err, "http.trustedProxies: invalid CIDR %q", cidr)
		}
	}
	if cfg.Mongo != nil && (strings.TrimSpace(cfg.Mongo.URI) == "" || strings.TrimSpace(cfg.Mongo.Database) == "") {
		return errors.New("mongo.uri and mongo.database are required")
	}

	return nil
}

// Validate checks the signing configuration.
func (t TokenConfig) Validate() error {
	if t.AccessSecret == "" || t.RefreshSecret == "" {
		return errors.New("token secrets must be provided")
	}
	if t.AccessSecret == t.RefreshSecret {
		return errors.New("token access and refresh secrets must differ")
	}
	if t.AccessExpiry <= 0 || t.RefreshExpiry <= 0 {
		return errors.New("token expiries must be positive")
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

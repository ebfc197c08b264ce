package config

import (
	"bearer-auth-api/internal/app/ports"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/mcuadros/go-defaults"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type ProgramConfig struct {
	HttpServer      HttpServerConfig      `yaml:"http_server"`
	TokenRepository TokenRepositoryConfig `yaml:"token_repository"`
	Security        SecurityConfig        `yaml:"security"`
	Metrics         MetricsContext        `yaml:"metrics"`
	Logging         LoggingConfig         `yaml:"logging"`
}

type MetricsContext struct {
	Namespace   string `yaml:"namespace" default:"bearer"`
	Environment string `yaml:"environment"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"text"`
}

type HttpServerConfig struct {
	Banner         string        `yaml:"banner" default:"Bearer Auth API"`
	ListenAddress  string        `yaml:"listen_address" default:":8080"`
	UnixSocketPath string        `yaml:"unix_socket_path"`
	TelemetryPath  string        `yaml:"telemetry_path" default:"/metrics"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"60s"`
	Cors           CorsConfig    `yaml:"cors"`
}

type CorsConfig struct {
	Enabled          bool     `yaml:"enabled" default:"false"`
	AllowedOrigins   []string `yaml:"allowed_origins" default:"[*]"`
	AllowedMethods   []string `yaml:"allowed_methods" default:"[GET,POST,OPTIONS]"`
	AllowedHeaders   []string `yaml:"allowed_headers" default:"[Authorization,Content-Type,X-Api-Key,X-Timestamp,X-Content-Sha256]"`
	AllowCredentials bool     `yaml:"allow_credentials" default:"false"`
	MaxAge           int      `yaml:"max_age" default:"300"`
}

type SecurityConfig struct {
	Bearer BearerConfig `yaml:"bearer"`
	HMAC   HMACConfig   `yaml:"hmac"`
	JWT    JWTConfig    `yaml:"jwt"`
	Chains ChainsConfig `yaml:"chains"`
	Hasher HasherConfig `yaml:"hasher"`
}

// BearerConfig mirrors the options of the bearer access token strategy.
type BearerConfig struct {
	AccessTokenName      string `yaml:"access_token_name" default:"access_token"`
	AllowQueryToken      bool   `yaml:"allow_query_token" default:"false"`
	AllowCookieToken     bool   `yaml:"allow_cookie_token" default:"false"`
	AllowMultipleHeaders bool   `yaml:"allow_multiple_headers" default:"false"`
	AllowChaining        bool   `yaml:"allow_chaining" default:"false"`
	TokenType            string `yaml:"token_type" default:"Bearer"`
	EntityType           string `yaml:"entity_type"`

	// Validator selects the token validator: "repository" or "jwt".
	Validator string         `yaml:"validator" default:"repository"`
	Cache     ValidatorCache `yaml:"cache"`
}

type ValidatorCache struct {
	Size int           `yaml:"size" default:"1024"`
	TTL  time.Duration `yaml:"ttl" default:"30s"`
}

type HMACConfig struct {
	WindowSeconds int               `yaml:"window_seconds" default:"60"`
	MaxBodyBytes  int64             `yaml:"max_body_bytes" default:"1048576"`
	AccessKeys    map[string]string `yaml:"access_keys"`
}

type JWTConfig struct {
	Secret      string        `yaml:"secret"`
	Issuer      string        `yaml:"issuer"`
	Audience    string        `yaml:"audience"`
	AllowedAlgs []string      `yaml:"allowed_algs" default:"[HS256]"`
	Leeway      time.Duration `yaml:"leeway" default:"60s"`
	EntityClaim string        `yaml:"entity_claim" default:"entities"`
	BlockClaim  string        `yaml:"block_claim" default:"blocked"`
}

// ChainsConfig lists, per protected route group, the strategies tried in order.
type ChainsConfig struct {
	API   ChainConfig `yaml:"api"`
	Admin ChainConfig `yaml:"admin"`
}

type ChainConfig struct {
	Strategies []string `yaml:"strategies"`
	Mode       string   `yaml:"mode" default:"required"`
}

type HasherConfig struct {
	DefaultAlgorithm string `yaml:"default_algorithm" default:"raw-sha256"`
}

type TokenRepositoryConfig struct {
	Type            string                      `yaml:"type" default:"inmem"`
	LoadInitialData bool                        `yaml:"load_initial_data" default:"false"`
	InitialData     TokenRepositoryInitialData  `yaml:"initial_data"`
	InMem           TokenRepositoryInMemConfig  `yaml:"inmem"`
	Sqlite          TokenRepositorySqliteConfig `yaml:"sqlite"`
	MySQL           TokenRepositoryMySqlConfig  `yaml:"mysql"`
	Redis           TokenRepositoryRedisConfig  `yaml:"redis"`
}

type TokenRepositoryInitialData struct {
	// Tokens maps the clear-text token (or its digest when token_is_digest is set) to its record.
	Tokens map[string]InitialToken `yaml:"tokens"`
}

type InitialToken struct {
	ports.TokenInfo `yaml:",inline"`
	TokenIsDigest   bool `yaml:"token_is_digest"`
}

type TokenRepositoryInMemConfig struct {
	EntitiesLimit int `yaml:"entities_limit" default:"1000"`
}

type TokenRepositorySqliteConfig struct {
	DbFilePath   string        `yaml:"db_file_path"`
	CreateDbDir  bool          `yaml:"create_db_dir" default:"false"`
	QueryTimeout time.Duration `yaml:"query_timeout" default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"5s"`
}

type TokenRepositoryMySqlConfig struct {
	Database     string        `yaml:"database"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	User         string        `yaml:"user"`
	Password     string        `yaml:"password"`
	IgnoreSSL    bool          `yaml:"ignore_ssl"`
	SSLCaPath    string        `yaml:"ssl_ca_path"`
	QueryTimeout time.Duration `yaml:"query_timeout" default:"5s"`
}

type TokenRepositoryRedisConfig struct {
	Address      string        `yaml:"address" default:"127.0.0.1:6379"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db" default:"0"`
	KeyPrefix    string        `yaml:"key_prefix" default:"bearer:tokens:"`
	QueryTimeout time.Duration `yaml:"query_timeout" default:"2s"`
}

func LoadConfig(path string) (*ProgramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigString(string(data))
}

func LoadConfigString(data string) (*ProgramConfig, error) {
	expanded := ExpandEnvWithDefaults(data)
	var config ProgramConfig
	err := yaml.Unmarshal([]byte(expanded), &config)
	if err != nil {
		return nil, err
	}
	defaults.SetDefaults(&config)
	return &config, nil
}

// ConfigureLogger applies the logging section to the standard logrus logger.
func (c *ProgramConfig) ConfigureLogger() error {
	lvl, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	log.SetLevel(lvl)
	switch c.Logging.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported logging format: '%s'", c.Logging.Format)
	}
	return nil
}

func (c *ProgramConfig) PrintHello(programName, programVersion string, pidFile string, bootstrap bool) {
	log.WithFields(log.Fields{
		"pid":              os.Getpid(),
		"pidfile":          pidFile,
		"bootstrap":        bootstrap,
		"token_repository": c.TokenRepository.Type,
		"validator":        c.Security.Bearer.Validator,
	}).Infof("%s v.%s", programName, programVersion)
}

func (c *ProgramConfig) GetAccessKey(key string) (string, error) {
	if c.Security.HMAC.AccessKeys == nil {
		return "", fmt.Errorf("access key %q not found", key)
	}
	if val, ok := c.Security.HMAC.AccessKeys[key]; ok {
		return val, nil
	}
	return "", fmt.Errorf("access key %q not found", key)
}

// GetInitialTokens returns the seed records keyed by clear-text token or digest.
func (c *ProgramConfig) GetInitialTokens() map[string]InitialToken {
	out := make(map[string]InitialToken, len(c.TokenRepository.InitialData.Tokens))
	for token, t := range c.TokenRepository.InitialData.Tokens {
		tt := t
		if tt.Principal == "" {
			tt.Principal = tt.ID
		}
		out[token] = tt
	}
	return out
}

var varWithDefault = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-(.*?))?}`)

// ExpandEnvWithDefaults handles ${VAR:-default}, ${VAR} and $VAR the env values
func ExpandEnvWithDefaults(s string) string {
	s = varWithDefault.ReplaceAllStringFunc(s, func(m string) string {
		sub := varWithDefault.FindStringSubmatch(m)
		name, defaultVal := sub[1], sub[2]
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
		if defaultVal != "" {
			return defaultVal
		}
		// If no default (the pattern was just ${VAR}), keep it unresolved
		return "${" + name + "}"
	})
	// handle $VAR and ${VAR}
	return os.ExpandEnv(s)
}

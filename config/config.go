package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"smartfit/internal/domain/constants"
	"smartfit/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultPollInterval       = 2 * time.Second
	defaultVATRate            = 0.12
	defaultShippingFee        = 200
	defaultReconcileInterval  = 5 * time.Minute
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
	} `json:"http" yaml:"http"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase holds the shared app settings used by the database, auth and messaging clients
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Store *StoreConfig `json:"store" yaml:"store"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub configuration for order status events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order tracking codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	Activation *ActivationConfig `json:"activation" yaml:"activation"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

// SecretKeyConfig holds the HMAC secrets for locally issued session tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "local" (bcrypt credentials in the store) or "firebase"
	Provider   string `json:"provider" yaml:"provider"`
	BcryptCost int    `json:"bcryptCost" yaml:"bcryptCost"`
	// WebAPIKey is the Firebase web API key used for password sign-in
	WebAPIKey string `json:"webApiKey" yaml:"webApiKey"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines the Firebase app configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
}

// StoreConfig selects the document store backend
type StoreConfig struct {
	// Provider is "memory" or "firebase"
	Provider string `json:"provider" yaml:"provider"`
	RootPath string `json:"rootPath" yaml:"rootPath"`
	// PollInterval is how often live subscriptions re-read their path for remote changes
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	// SeedFile is an optional JSON export loaded into the memory store at startup
	SeedFile string `json:"seedFile" yaml:"seedFile"`
}

// StorageConfig defines the blob buckets. Bucket URLs use gocloud.dev syntax
// (gs://bucket, file:///dir, mem://).
type StorageConfig struct {
	AssetsBucketURL     string `json:"assetsBucketUrl" yaml:"assetsBucketUrl"`
	DeepARBucketURL     string `json:"deepArBucketUrl" yaml:"deepArBucketUrl"`
	PublicBaseURL       string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	DeepARPublicBaseURL string `json:"deepArPublicBaseUrl" yaml:"deepArPublicBaseUrl"`
	MaxUploadBytes      int64  `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// MailConfig defines outgoing email configuration
type MailConfig struct {
	Provider    string `json:"provider" yaml:"provider"`
	APIKey      string `json:"apiKey" yaml:"apiKey"`
	FromAddress string `json:"fromAddress" yaml:"fromAddress"`
	FromName    string `json:"fromName" yaml:"fromName"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAttempts bounds how often one message is delivered before it is given up
	PushAttempts int `json:"pushAttempts" yaml:"pushAttempts"`
}

// PricingConfig holds the custom order price constants
type PricingConfig struct {
	VATRate     float64 `json:"vatRate" yaml:"vatRate"`
	ShippingFee float64 `json:"shippingFee" yaml:"shippingFee"`
}

// ActivationConfig controls the employee activation reconciler
type ActivationConfig struct {
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so the service starts with an in-memory setup.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = constants.StoreProviderMemory
	}
	if cfg.Store.RootPath == "" {
		cfg.Store.RootPath = constants.DefaultRootPath
	}
	if cfg.Store.PollInterval <= 0 {
		cfg.Store.PollInterval = defaultPollInterval
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = constants.AuthProviderLocal
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.AssetsBucketURL == "" {
		cfg.Storage.AssetsBucketURL = "mem://"
	}
	if cfg.Storage.DeepARBucketURL == "" {
		cfg.Storage.DeepARBucketURL = "mem://"
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{Provider: constants.MailProviderLog}
	}

	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if cfg.Pricing.VATRate <= 0 {
		cfg.Pricing.VATRate = defaultVATRate
	}
	if cfg.Pricing.ShippingFee <= 0 {
		cfg.Pricing.ShippingFee = defaultShippingFee
	}

	if cfg.Activation == nil {
		cfg.Activation = &ActivationConfig{}
	}
	if cfg.Activation.ReconcileInterval <= 0 {
		cfg.Activation.ReconcileInterval = defaultReconcileInterval
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

package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth configures Clerk session tokens and Clerk (Svix) webhooks
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Stripe configures payment intents and webhook verification
	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the per-profile activation lock. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	LLM *LLMConfig `json:"llm" yaml:"llm"`

	Video *VideoConfig `json:"video" yaml:"video"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Invoice *InvoiceConfig `json:"invoice" yaml:"invoice"`

	Workflow *WorkflowConfig `json:"workflow" yaml:"workflow"`

	MealPlan *MealPlanConfig `json:"mealPlan" yaml:"mealPlan"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines identity provider settings
type AuthConfig struct {
	// PEM encoded RSA public key used to verify session tokens offline
	JWTPublicKey string `json:"jwtPublicKey" yaml:"jwtPublicKey"`
	Issuer       string `json:"issuer" yaml:"issuer"`
	// Accepted values of the "azp" claim. Empty accepts any.
	AuthorizedParties []string `json:"authorizedParties" yaml:"authorizedParties"`
	WebhookSecret     string   `json:"webhookSecret" yaml:"webhookSecret"`
}

// StripeConfig defines payment provider settings
type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	// Plan price in the smallest currency unit
	PlanPrice int64  `json:"planPrice" yaml:"planPrice"`
	Currency  string `json:"currency" yaml:"currency"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the worker push handler (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens. Defaults to the push endpoint URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockTTL  time.Duration `json:"lockTTL" yaml:"lockTTL"`
	LockWait time.Duration `json:"lockWait" yaml:"lockWait"`
}

// LLMConfig selects and configures the text generation provider
type LLMConfig struct {
	// Provider: "openai" or "vertex"
	Provider string `json:"provider" yaml:"provider"`

	// openai
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// vertex
	ProjectID       string `json:"projectId" yaml:"projectId"`
	Location        string `json:"location" yaml:"location"`
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	Model       string        `json:"model" yaml:"model"`
	Temperature float32       `json:"temperature" yaml:"temperature"`
	MaxTokens   int           `json:"maxTokens" yaml:"maxTokens"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// VideoConfig configures exercise video lookup
type VideoConfig struct {
	// YouTube Data API key. Empty disables search, existing links are still validated.
	APIKey             string        `json:"apiKey" yaml:"apiKey"`
	OEmbedEndpoint     string        `json:"oembedEndpoint" yaml:"oembedEndpoint"`
	CandidatesPerQuery int           `json:"candidatesPerQuery" yaml:"candidatesPerQuery"`
	Concurrency        int           `json:"concurrency" yaml:"concurrency"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
	// Upper bound for resolving all videos of one plan.
	BatchTimeout time.Duration `json:"batchTimeout" yaml:"batchTimeout"`
}

type MailConfig struct {
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
	FromName  string `json:"fromName" yaml:"fromName"`
	AppURL    string `json:"appUrl" yaml:"appUrl"`
}

// InvoiceConfig holds the supplier snapshot copied onto every invoice
type InvoiceConfig struct {
	NumberPrefix string         `json:"numberPrefix" yaml:"numberPrefix"`
	VATRate      float64        `json:"vatRate" yaml:"vatRate"`
	Supplier     SupplierConfig `json:"supplier" yaml:"supplier"`
}

type SupplierConfig struct {
	Name      string `json:"name" yaml:"name"`
	Street    string `json:"street" yaml:"street"`
	City      string `json:"city" yaml:"city"`
	ZIP       string `json:"zip" yaml:"zip"`
	Country   string `json:"country" yaml:"country"`
	CompanyID string `json:"companyId" yaml:"companyId"`
	VATID     string `json:"vatId" yaml:"vatId"`
	IBAN      string `json:"iban" yaml:"iban"`
	Email     string `json:"email" yaml:"email"`
}

// WorkflowConfig defines step timeouts and retry budgets
type WorkflowConfig struct {
	StepTimeout    time.Duration `json:"stepTimeout" yaml:"stepTimeout"`
	LLMStepTimeout time.Duration `json:"llmStepTimeout" yaml:"llmStepTimeout"`
	DB             RetryConfig   `json:"db" yaml:"db"`
	LLM            RetryConfig   `json:"llm" yaml:"llm"`
}

type RetryConfig struct {
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	MinBackoff  time.Duration `json:"minBackoff" yaml:"minBackoff"`
	MaxBackoff  time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	JitterFrac  float64       `json:"jitterFrac" yaml:"jitterFrac"`
}

type MealPlanConfig struct {
	Days int `json:"days" yaml:"days"`
	// A snack is appended when the three meals fall short of the target by more than this
	SnackGapKcal float64 `json:"snackGapKcal" yaml:"snackGapKcal"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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

	// Example: STRIPE_WEBHOOKSECRET -> stripe.webhookSecret
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
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "fitplan"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "czk"
	}

	if cfg.LLM == nil {
		cfg.LLM = &LLMConfig{}
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 8000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 2 * time.Minute
	}

	if cfg.Video == nil {
		cfg.Video = &VideoConfig{}
	}
	if cfg.Video.OEmbedEndpoint == "" {
		cfg.Video.OEmbedEndpoint = "https://www.youtube.com/oembed"
	}
	if cfg.Video.CandidatesPerQuery == 0 {
		cfg.Video.CandidatesPerQuery = 3
	}
	if cfg.Video.Concurrency == 0 {
		cfg.Video.Concurrency = 4
	}
	if cfg.Video.Timeout == 0 {
		cfg.Video.Timeout = 5 * time.Second
	}
	if cfg.Video.BatchTimeout == 0 {
		cfg.Video.BatchTimeout = time.Minute
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}

	if cfg.Invoice == nil {
		cfg.Invoice = &InvoiceConfig{}
	}
	if cfg.Invoice.NumberPrefix == "" {
		cfg.Invoice.NumberPrefix = "FP"
	}

	if cfg.Workflow == nil {
		cfg.Workflow = &WorkflowConfig{}
	}
	if cfg.Workflow.StepTimeout == 0 {
		cfg.Workflow.StepTimeout = 30 * time.Second
	}
	if cfg.Workflow.LLMStepTimeout == 0 {
		cfg.Workflow.LLMStepTimeout = 3 * time.Minute
	}
	applyRetryDefaults(&cfg.Workflow.DB, 3, 200*time.Millisecond, 2*time.Second)
	applyRetryDefaults(&cfg.Workflow.LLM, 4, 2*time.Second, 30*time.Second)

	if cfg.MealPlan == nil {
		cfg.MealPlan = &MealPlanConfig{}
	}
	if cfg.MealPlan.Days == 0 {
		cfg.MealPlan.Days = 7
	}
	if cfg.MealPlan.SnackGapKcal == 0 {
		cfg.MealPlan.SnackGapKcal = 150
	}

	if cfg.Redis != nil {
		if cfg.Redis.LockTTL == 0 {
			cfg.Redis.LockTTL = 30 * time.Second
		}
		if cfg.Redis.LockWait == 0 {
			cfg.Redis.LockWait = 10 * time.Second
		}
	}
}

func applyRetryDefaults(rc *RetryConfig, attempts int, minBackoff, maxBackoff time.Duration) {
	if rc.MaxAttempts == 0 {
		rc.MaxAttempts = attempts
	}
	if rc.MinBackoff == 0 {
		rc.MinBackoff = minBackoff
	}
	if rc.MaxBackoff == 0 {
		rc.MaxBackoff = maxBackoff
	}
	if rc.JitterFrac == 0 {
		rc.JitterFrac = 0.2
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
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

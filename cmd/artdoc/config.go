package main

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/artdoc"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider names accepted by ARTDOC_PROVIDER and ARTDOC_IMAGE_PROVIDER.
const (
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderMarkdown = "markdown"
)

// Config holds settings read from the environment.
type Config struct {
	Provider          string        `env:"ARTDOC_PROVIDER" envDefault:"openai" validate:"oneof=openai gemini markdown"`
	ImageProvider     string        `env:"ARTDOC_IMAGE_PROVIDER" envDefault:"openai" validate:"oneof=openai gemini"`
	TextModel         string        `env:"ARTDOC_TEXT_MODEL"`
	ImageModel        string        `env:"ARTDOC_IMAGE_MODEL"`
	ImageSize         string        `env:"ARTDOC_IMAGE_SIZE" envDefault:"1024x1024" validate:"imagesize"`
	Timeout           time.Duration `env:"ARTDOC_TIMEOUT" envDefault:"2m" validate:"gt=0"`
	RequestsPerMinute int           `env:"ARTDOC_REQUESTS_PER_MINUTE" envDefault:"0" validate:"gte=0"`
	Debug             bool          `env:"ARTDOC_DEBUG" envDefault:"false"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
}

var imageSizeRe = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`)

// validate is the shared validator instance for configuration.
var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("imagesize", func(fl validator.FieldLevel) bool {
		return imageSizeRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register image size validator: %v", err))
	}
}

// LoadConfig reads the configuration. When environ is nil the process
// environment is used, after loading dotenv if that file exists.
func LoadConfig(environ map[string]string, dotenv string) (*Config, error) {
	opts := env.Options{Environment: environ}
	if environ == nil && dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, artdoc.Errorf(artdoc.EINVALID, "failed to load %s: %v", dotenv, err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, artdoc.Errorf(artdoc.EINVALID, "invalid environment: %v", err)
	}
	return cfg, nil
}

// Validate checks field values after flag overrides are applied.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return artdoc.Errorf(artdoc.EINVALID, "invalid configuration: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", envName(fe.StructField()), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return artdoc.Errorf(artdoc.EINVALID, "invalid configuration: %s", strings.Join(msgs, "; "))
}

// APIKey returns the key for provider or an EINVALID error with a hint on
// where to get one.
func (c *Config) APIKey(provider string) (string, error) {
	switch provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return "", artdoc.Errorf(artdoc.EINVALID, "OPENAI_API_KEY not set. Get a key at https://platform.openai.com/api-keys")
		}
		return c.OpenAIAPIKey, nil
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return "", artdoc.Errorf(artdoc.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		return c.GeminiAPIKey, nil
	default:
		return "", nil
	}
}

var envNames = map[string]string{
	"Provider":          "ARTDOC_PROVIDER",
	"ImageProvider":     "ARTDOC_IMAGE_PROVIDER",
	"ImageSize":         "ARTDOC_IMAGE_SIZE",
	"Timeout":           "ARTDOC_TIMEOUT",
	"RequestsPerMinute": "ARTDOC_REQUESTS_PER_MINUTE",
	"OpenAIBaseURL":     "OPENAI_BASE_URL",
}

func envName(field string) string {
	if name, ok := envNames[field]; ok {
		return name
	}
	return field
}

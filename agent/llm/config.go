package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	openaix "github.com/suriyasingaravel/BotDesk/pkg/openai"
)

// Role distinguishes the two points where the model is called: the routing
// classification and the handler reply generation.
type Role string

const (
	RoleRouter  Role = "router"
	RoleHandler Role = "handler"
)

// Config is the env-driven model configuration. A single default model serves
// every call unless a per-role override is set. Negative temperatures mean
// "use the default".
type Config struct {
	BaseURL             string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.openai.com/v1"`
	APIKey              string        `envconfig:"API_KEY" split_words:"true"`
	Model               string        `envconfig:"MODEL" split_words:"true" default:"gpt-4"`
	MaxCompletionTokens int           `envconfig:"MAX_COMPLETION_TOKENS" split_words:"true" default:"1000"`
	Temperature         float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout             time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`

	RouterModel        string  `envconfig:"ROUTER_MODEL" split_words:"true"`
	HandlerModel       string  `envconfig:"HANDLER_MODEL" split_words:"true"`
	RouterTemperature  float64 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"-1"`
	HandlerTemperature float64 `envconfig:"HANDLER_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openai api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenAIFor projects the config for one role, applying overrides.
func (c Config) OpenAIFor(role Role) openaix.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch role {
	case RoleRouter:
		if v := strings.TrimSpace(c.RouterModel); v != "" {
			modelName = v
		}
		if c.RouterTemperature >= 0 {
			temp = c.RouterTemperature
		}
	case RoleHandler:
		if v := strings.TrimSpace(c.HandlerModel); v != "" {
			modelName = v
		}
		if c.HandlerTemperature >= 0 {
			temp = c.HandlerTemperature
		}
	}

	return openaix.Config{
		BaseURL:             strings.TrimSpace(c.BaseURL),
		APIKey:              strings.TrimSpace(c.APIKey),
		Model:               modelName,
		MaxCompletionTokens: c.MaxCompletionTokens,
		Temperature:         temp,
		Timeout:             c.Timeout,
	}
}

// Package translator defines the translation capability contract and the
// backends that provide it.
package translator

import (
	"context"
	"time"
)

// BackendConfig carries per-backend settings supplied from flags or the
// config file. Individual backends use the fields that apply to them.
type BackendConfig struct {
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	ProjectID   string        `mapstructure:"project_id" json:"project_id"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Capability is one loaded translation model for a single language direction.
// maxLength caps the generated output length; backends without such a knob
// ignore it.
type Capability interface {
	Translate(ctx context.Context, text string, maxLength int) (string, error)
}

// Loader initializes the capability for one language direction. Loading may
// be slow and blocking (remote model weights are pulled on first use); the
// model cache guarantees it runs at most once per direction.
type Loader interface {
	Name() string
	Load(ctx context.Context, sourceCode, targetCode, modelID string) (Capability, error)
}

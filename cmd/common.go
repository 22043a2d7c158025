/*
Copyright © 2025 Aman Singhal <amansinghal116@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amansinghal116/polyglotlab/internal/detector"
	"github.com/amansinghal116/polyglotlab/internal/generator"
	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/model"
	"github.com/amansinghal116/polyglotlab/internal/store"
	"github.com/amansinghal116/polyglotlab/internal/studio"
	"github.com/amansinghal116/polyglotlab/internal/translator"
)

// buildLoader constructs the translation backend named in the config.
func buildLoader(v *viper.Viper) (translator.Loader, error) {
	cfg := translator.BackendConfig{
		APIKey:      v.GetString("hf-key"),
		BaseURL:     v.GetString("hf-url"),
		Credentials: v.GetString("credentials"),
	}
	switch name := v.GetString("backend"); name {
	case "huggingface", "hf":
		return translator.NewHFLoader(cfg.APIKey, cfg.BaseURL), nil
	case "google":
		return translator.NewGoogleLoader(cfg.Credentials), nil
	default:
		return nil, fmt.Errorf("unknown translation backend: %s", name)
	}
}

// buildGenerator constructs the text generation backend named in the config.
func buildGenerator(v *viper.Viper) (generator.Generator, error) {
	switch name := v.GetString("generator"); name {
	case "huggingface", "hf":
		return generator.NewHFGenerator(v.GetString("generator-model"), v.GetString("hf-key"), v.GetString("hf-url")), nil
	case "ollama":
		return generator.NewOllamaGenerator(v.GetString("generator-model"), v.GetString("ollama-url")), nil
	default:
		return nil, fmt.Errorf("unknown generator backend: %s", name)
	}
}

// buildStudio wires the full service from config. The cache is returned so
// callers can preload models; the store is nil when no glossary database is
// configured, and the caller owns closing it.
func buildStudio(v *viper.Viper) (*studio.Service, *model.Cache, *store.Store, error) {
	loader, err := buildLoader(v)
	if err != nil {
		return nil, nil, nil, err
	}
	gen, err := buildGenerator(v)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []studio.Option{}
	if v.GetBool("detect") {
		opts = append(opts, studio.WithDetector(detector.New()))
	}

	var db *store.Store
	if dbPath := v.GetString("db"); dbPath != "" {
		db, err = store.New(dbPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open glossary database: %w", err)
		}
		opts = append(opts, studio.WithGlossary(db))
	}

	cache := model.NewCache(loader)
	svc := studio.New(language.NewRegistry(), cache, gen, opts...)
	return svc, cache, db, nil
}

// registerBackendFlags declares the shared backend configuration on a command
// and binds every flag into v, so a polyglotlab.yaml file or POLYGLOTLAB_*
// environment variables can override the defaults.
func registerBackendFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("backend", "huggingface", "Translation backend: huggingface or google")
	cmd.Flags().String("hf-key", "", "Hugging Face API token")
	cmd.Flags().String("hf-url", "", "Hugging Face Inference API base URL (default used if empty)")
	cmd.Flags().String("credentials", "", "Path to Google Cloud credentials (google backend)")
	cmd.Flags().String("generator", "huggingface", "Generation backend for explanations and feedback: huggingface or ollama")
	cmd.Flags().String("generator-model", "", "Generation model name (backend default used if empty)")
	cmd.Flags().String("ollama-url", "http://localhost:11434", "Ollama base URL")
	cmd.Flags().String("db", "", "Glossary database path (glossary disabled if empty)")
	cmd.Flags().Bool("detect", true, "Detect the source language when set to Auto-detect")

	v.SetEnvPrefix("polyglotlab")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	v.SetConfigName("polyglotlab")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// A missing config file is fine; flags and env cover everything.
	_ = v.ReadInConfig()
}

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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amansinghal116/polyglotlab/internal/language"
)

var translateViper = viper.New()

var (
	translateSource  string
	translateTarget  string
	translateTone    string
	translateDomain  string
	translateBack    bool
	translateExplain bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text from the command line",
	Long: `Translate text without starting the web studio.

The text is taken from the arguments, or from stdin when no arguments are
given. Language flags take display names (e.g. "French") or "Auto-detect"
for the source.

Examples:
  polyglotlab translate -s English -t French "Hello, how are you?"
  echo "Guten Tag" | polyglotlab translate -s German -t English
  polyglotlab translate -s English -t Spanish --tone Formal --back "See you soon"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(raw)
		}

		svc, _, db, err := buildStudio(translateViper)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		ctx := cmd.Context()

		if translateBack {
			forward, backward, err := svc.BackTranslate(ctx, text, translateSource, translateTarget, translateTone, translateDomain)
			if err != nil {
				return err
			}
			fmt.Println(forward.Display())
			fmt.Println(backward.Display())
			return nil
		}

		out, err := svc.Translate(ctx, text, translateSource, translateTarget, translateTone, translateDomain)
		if err != nil {
			return err
		}
		fmt.Println(out.Display())

		if translateExplain {
			explanation, err := svc.Explain(ctx, text, out.Text, translateSource, translateTarget)
			if err != nil {
				return fmt.Errorf("failed to explain translation: %w", err)
			}
			fmt.Println()
			fmt.Println(explanation)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateSource, "source", "s", language.AutoDetect, "Source language name")
	translateCmd.Flags().StringVarP(&translateTarget, "target", "t", "", "Target language name (required)")
	translateCmd.Flags().StringVar(&translateTone, "tone", language.DefaultTone, "Tone hint: Neutral, Formal, Informal, or Simplified")
	translateCmd.Flags().StringVar(&translateDomain, "domain", language.DefaultDomain, "Domain hint: General, Business, Technical, or Casual")
	translateCmd.Flags().BoolVar(&translateBack, "back", false, "Also back-translate the result for a round-trip check")
	translateCmd.Flags().BoolVar(&translateExplain, "explain", false, "Explain the translation choices")
	_ = translateCmd.MarkFlagRequired("target")
	registerBackendFlags(translateCmd, translateViper)
}

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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "polyglotlab",
	Short: "Machine translation studio",
	Long: `A machine translation testing studio for English, French, German,
Spanish, and Swedish.

Translate with tone and domain hints, verify translations with automatic
back-translation, and practice with model-generated feedback on your own
translations.

Use "polyglotlab serve" to start the web studio, or "polyglotlab translate"
for one-shot translations from the command line.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

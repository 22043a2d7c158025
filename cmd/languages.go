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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/model"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and translation pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := language.NewRegistry()
		names := registry.Names()
		codes := registry.Codes()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tCODE")
		for i := range names {
			fmt.Fprintf(w, "%s\t%s\n", names[i], codes[i])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Supported translation pairs:")
		for _, p := range model.SupportedPairs() {
			src, _ := registry.NameOf(p.Source)
			tgt, _ := registry.NameOf(p.Target)
			fmt.Printf("  %s -> %s\n", src, tgt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

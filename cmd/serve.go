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
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/model"
	"github.com/amansinghal116/polyglotlab/internal/server"
)

var serveViper = viper.New()

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web studio",
	Long: `Start the web studio on the configured address.

The studio serves a three-tab page: Smart Translate, Back-translation
Check, and Learning Mode. Models are loaded lazily on first use unless
--preload is given.

Every flag can also be set through the environment with a POLYGLOTLAB_
prefix, e.g. POLYGLOTLAB_HF_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, "", log.LstdFlags)

		svc, cache, db, err := buildStudio(serveViper)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveViper.GetBool("preload") {
			pairs := model.SupportedPairs()
			loaded, errs := cache.Preload(ctx, pairs)
			logger.Printf("preloaded %d/%d models", loaded, len(pairs))
			for _, e := range errs {
				logger.Printf("preload: %v", e)
			}
		}

		srv := server.New(serveViper.GetString("addr"), language.NewRegistry(), svc, logger)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Bool("preload", false, "Load all supported model pairs before serving")
	registerBackendFlags(serveCmd, serveViper)
}

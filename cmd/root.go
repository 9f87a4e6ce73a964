/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/logreturn/internal/config"
	"github.com/valpere/logreturn/internal/logging"
)

var version = "0.1.0"

var (
	cfgFile string

	cfg    config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "logreturn",
	Short: "Toggle console.log wrappers around JavaScript return values",
	Long: `logreturn wraps a return value or a selected expression in
(a => console.log(a) || a)(...), which logs the value and passes it through
unchanged. Running it again on wrapped code removes the wrapper.

Editors call it on a file position:
  logreturn toggle src/app.js --line 12 --write

or pipe a selection through it:
  logreturn filter < selection.js

Settings are read from $HOME/.config/logreturn/config.yaml and LOGRETURN_*
environment variables.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := bindFlags(v, cmd); err != nil {
			return err
		}

		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger.WithField("command", cmd.Name()).Debug("configuration loaded")
		return nil
	},
}

// bindFlags maps flags onto config keys so a flag given on the command line
// overrides the config file and the environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyWrite:     "write",
		config.KeyStrict:    "strict",
	}
	for key, name := range bindings {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/logreturn/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Diagnostic log format (text or json)")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit with an error when nothing was toggled")
}

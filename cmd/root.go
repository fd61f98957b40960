/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

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
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xoviat/klib/lib"
)

var (
	cfg = koanf.New(".")
	log *zap.SugaredLogger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "klib",
	Short: "Generate and manage KiCad part libraries",
	Long: `klib generates KiCad symbol libraries and footprints for passive
and discrete component families from tabular part data, and maintains
a local searchable parts library.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().String("config", "klib.yaml", "config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}

/*
	Configuration lives in klib.yaml next to the working directory and
	KLIB_* environment variables; flags override both.
*/
func initConfig() {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if lib.Exists(path) {
		cfg.Load(file.Provider(path), yaml.Parser())
	}

	cfg.Load(env.Provider("KLIB_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "KLIB_")), "_", ".")
	}), nil)
}

func initLogger() {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")

	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		os.Exit(1)
	}

	log = logger.Sugar()
}

func outputDir() string {
	if dir := cfg.String("output"); dir != "" {
		return dir
	}
	return "."
}

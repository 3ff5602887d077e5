// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the attack-layers CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/attack-layers/internal/attack"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "attack-layers/0.1"
)

// rootCmd generates the layer; it is the only command that does real work.
var rootCmd = &cobra.Command{
	Use:   "attack-layers",
	Short: "Generate an ATT&CK Navigator layer of techniques used by matching groups",
	Long: `attack-layers downloads the MITRE ATT&CK enterprise STIX bundle, selects the
groups whose aliases contain a phrase (default "bear"), and writes a Navigator
layer highlighting every technique those groups use.

Deprecated and revoked groups and techniques are ignored. The source URL,
timeout, layer profile, and pattern are read from attack-layers.yaml or
ATTACK_LAYERS_* environment variables.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName("attack-layers")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "attack-layers"))
	}

	viper.SetDefault("source.url", attack.DefaultURL)
	viper.SetDefault("source.timeout", defaultTimeout)
	viper.SetDefault("source.user_agent", defaultUserAgent)
	viper.SetDefault("layer.profile", "")
	viper.SetDefault("layer.pattern", "")

	viper.SetEnvPrefix("ATTACK_LAYERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

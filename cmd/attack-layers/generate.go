// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/attack-layers/internal/layer"
	"github.com/pdiddy/attack-layers/pkg/types"
)

func init() {
	rootCmd.Flags().String("output", layer.DefaultOutput, "output filepath")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	cfg := generatorConfig(output)

	client := &http.Client{
		Timeout: cfg.Source.Timeout,
	}

	summary, err := layer.Generate(context.Background(), client, cfg, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "done: %d group(s), %d technique(s) in %s\n", summary.Groups, summary.Techniques, summary.Output)
	return nil
}

// generatorConfig assembles the run configuration from viper and the
// --output flag.
func generatorConfig(output string) types.GeneratorConfig {
	return types.GeneratorConfig{
		Source: types.SourceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("source.timeout"),
				UserAgent: viper.GetString("source.user_agent"),
			},
			URL: viper.GetString("source.url"),
		},
		ProfilePath: viper.GetString("layer.profile"),
		Pattern:     viper.GetString("layer.pattern"),
		Output:      output,
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the assessment service and print its configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		start := time.Now()
		cfg, err := client.FetchConfig(ctx)
		if err != nil {
			return fmt.Errorf("service unreachable: %w", err)
		}
		fmt.Printf("Service reachable (%s)\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("  Title:      %s\n", cfg.AppTitle)
		if cfg.AppSubtitle != "" {
			fmt.Printf("  Subtitle:   %s\n", cfg.AppSubtitle)
		}
		if cfg.CompanyName != "" {
			fmt.Printf("  Operator:   %s\n", cfg.CompanyName)
		}
		fmt.Printf("  Industries: %d  Sizes: %d  Regions: %d\n",
			len(cfg.Industries), len(cfg.CompanySizes), len(cfg.Regions))

		schema, err := client.FetchQuestionnaire(ctx)
		if err != nil {
			return fmt.Errorf("questionnaire unavailable: %w", err)
		}
		fmt.Printf("  Questions:  %d across %d sections\n",
			schema.QuestionCount(), len(schema.Sections))
		return nil
	},
}

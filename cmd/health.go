package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// healthCmd probes both APIs
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the learning and token APIs are reachable",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	probes := []struct {
		name    string
		baseURL string
		probe   func(context.Context) (*apiclient.HealthStatus, error)
	}{
		{"Learning API", cfg.Learning.BaseURL, learningClient.Health},
		{"Token API", cfg.Crypto.BaseURL, cryptoClient.Health},
	}

	var failed error
	for _, p := range probes {
		fmt.Printf("Checking %s at %s...\n", p.name, p.baseURL)
		status, err := p.probe(ctx)
		if err != nil {
			fmt.Printf("✗ %s unavailable\n", p.name)
			logger.Error().Err(err).Str("api", p.name).Msg("Health check failed")
			failed = errors.Join(failed, fmt.Errorf("%s: %w", p.name, err))
			continue
		}
		fmt.Printf("✓ %s: %s (%s)\n", p.name, status.Status, status.Timestamp)
	}

	return failed
}

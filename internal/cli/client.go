package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bookalope/bookalope-go/bookalope"
	"github.com/bookalope/bookalope-go/internal/config"
)

// newClient builds a library client from the environment configuration.
func newClient(cfg *config.Config) (*bookalope.Client, error) {
	setVerbose(cfg.Global.Verbose)
	if cfg.API.Token == "" {
		return nil, fmt.Errorf("no access token configured, set BOOKALOPE_TOKEN")
	}
	client, err := bookalope.NewClient(cfg.API.Host, cfg.API.Token)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// waitForAnalysis re-fetches the flow until the server moves it out of the
// processing step. The library never polls on its own; this loop is the
// caller-side poll cycle the workflow expects.
func waitForAnalysis(ctx context.Context, flow *bookalope.Bookflow, interval time.Duration) error {
	for flow.Step == bookalope.StepProcessing {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for document analysis: %w", ctx.Err())
		case <-time.After(interval):
		}
		if err := flow.Update(ctx); err != nil {
			return err
		}
	}
	if flow.Step == bookalope.StepProcessingFailed {
		return fmt.Errorf("document analysis failed for bookflow %s", flow.ID)
	}
	return nil
}

// waitForConversion polls the format's conversion status until the server
// reports it ready. The status strings are server-defined; treating
// "available"/"ok" as ready and "failed"/"error" as terminal is this
// command's policy, not a library contract.
func waitForConversion(ctx context.Context, flow *bookalope.Bookflow, format string, interval time.Duration) error {
	for {
		status, err := flow.ConvertStatus(ctx, format)
		if err != nil {
			return err
		}
		switch status {
		case "available", "ok":
			return nil
		case "failed", "error":
			return fmt.Errorf("conversion to %s failed", format)
		}
		printStatus("conversion status: %s", status)

		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for %s conversion: %w", format, ctx.Err())
		case <-time.After(interval):
		}
	}
}

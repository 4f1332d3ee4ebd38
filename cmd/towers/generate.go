package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/tower-placement/generate"
	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/model"
)

func generateCmd() *cobra.Command {
	var sizes []string

	cmd := &cobra.Command{
		Use:   "generate <outdir|->",
		Short: "Write the built-in small, medium and large instances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], sizes)
		},
	}

	cmd.Flags().StringSliceVar(&sizes, "size", nil, "sizes to generate (small, medium, large); defaults to all")
	return cmd
}

func runGenerate(cmd *cobra.Command, outDir string, names []string) error {
	logCfg := logging.ConfigFromEnv()
	logCfg.Output = cmd.ErrOrStderr()
	ctx, log := logging.WithRunLogger(cmd.Context(), logging.New(logCfg))

	sizes := model.Sizes()
	if len(names) > 0 {
		sizes = sizes[:0]
		for _, name := range names {
			size, err := model.ParseSize(name)
			if err != nil {
				return err
			}
			sizes = append(sizes, size)
		}
	}

	if outDir != "-" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, size := range sizes {
		path := "-"
		if outDir != "-" {
			path = filepath.Join(outDir, generate.FileName(size))
		}
		err := writeOutput(cmd, path, func(w io.Writer) error {
			return generate.Write(ctx, w, size)
		})
		if err != nil {
			return err
		}
		log.Info(ctx, "generated instance", logging.String("size", size.Name), logging.String("output", path))
	}
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spboyer/hare/internal/dataset"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [dataset ...]",
		Short: "Check dataset files without evaluating them",
		Long: `Load each dataset file and report every problem found.

YAML and JSON datasets are checked against the dataset schema; CSV datasets
are checked row by row. Compressed files (.gz, .zst) are decompressed first.
Exits with code 1 when any dataset is invalid.

With no arguments every dataset in the configured datasets directory is used.`,
		RunE: validateCommandE,
	}
	return cmd
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	paths, err := datasetPaths(args, cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	invalid := 0
	for _, p := range paths {
		ds, err := dataset.Load(p)
		if err != nil {
			var invalidErr *dataset.InvalidError
			if !errors.As(err, &invalidErr) {
				return err
			}
			invalid++
			fmt.Fprintf(w, "✗ %s\n", p) //nolint:errcheck
			for _, problem := range invalidErr.Problems {
				fmt.Fprintf(w, "    %s\n", problem) //nolint:errcheck
			}
			continue
		}
		fmt.Fprintf(w, "✓ %s (%s, %d conversations)\n", p, ds.Name, len(ds.Conversations)) //nolint:errcheck
	}

	if invalid > 0 {
		return &ValidationFailedError{
			Message: fmt.Sprintf("%d of %d dataset(s) invalid", invalid, len(paths)),
		}
	}
	return nil
}

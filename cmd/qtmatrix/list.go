package qtmatrix

import (
	"fmt"
	"io"

	"github.com/gosimple/slug"
	"github.com/opnlabs/qtmatrix/pkg/matrix"
	"github.com/opnlabs/qtmatrix/pkg/models"
	"github.com/opnlabs/qtmatrix/pkg/utils"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the jobs of the matrix without emitting variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.OutOrStdout(), cmd.ErrOrStderr(), *opts)
		},
	}
}

func list(stdout, stderr io.Writer, opts options) error {
	logger, err := utils.NewLogger("qtmatrix", utils.LogLevel(opts.logLevel), stderr)
	if err != nil {
		return err
	}

	c, err := loadCatalog(opts, logger)
	if err != nil {
		return err
	}
	m, err := matrix.Materialize(c)
	if err != nil {
		return fmt.Errorf("could not generate matrix: %w", err)
	}

	for _, p := range models.Platforms {
		entries := m.Platform(p)
		if entries == nil {
			fmt.Fprintf(stdout, "%s: no jobs\n", p)
			continue
		}
		fmt.Fprintf(stdout, "%s:\n", p)
		for _, key := range entries.Keys() {
			fmt.Fprintf(stdout, "  %s\t%s\n", slug.Make(key), key)
		}
	}
	return nil
}

package qtmatrix

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/opnlabs/qtmatrix/pkg/catalog"
	"github.com/opnlabs/qtmatrix/pkg/matrix"
	"github.com/opnlabs/qtmatrix/pkg/mirror"
	"github.com/opnlabs/qtmatrix/pkg/models"
	"github.com/opnlabs/qtmatrix/pkg/pipeline"
	"github.com/opnlabs/qtmatrix/pkg/utils"
	"github.com/spf13/cobra"
)

type options struct {
	catalogPath    string
	pythonVersions []string
	mirror         string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "qtmatrix",
		Short: "qtmatrix generates the Qt install test matrix",
		Long: `qtmatrix expands a catalog of Qt install jobs ( the built-in one or a YAML file )
into one set of variables per job and python version, and prints them as
Azure Pipelines output variables, one per platform.`,
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	addFlags(cmd, &opts)
	cmd.AddCommand(newListCmd(&opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func addFlags(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "f", "", "Path to a YAML job catalog. Uses the built-in catalog when empty.")
	cmd.PersistentFlags().StringArrayVarP(&opts.pythonVersions, "python-version", "p", nil, "Python version to test with. Overrides the catalog, can be repeated.")
	cmd.PersistentFlags().StringVarP(&opts.mirror, "mirror", "m", "", "Use this mirror instead of a random one.")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error). Defaults to QTMATRIX_LOG_LEVEL or warn.")
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(stdout, stderr io.Writer, opts options) error {
	logger, err := utils.NewLogger("qtmatrix", utils.LogLevel(opts.logLevel), stderr)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	c, err := loadCatalog(opts, logger)
	if err != nil {
		return err
	}

	m, err := matrix.Materialize(c)
	if err != nil {
		return fmt.Errorf("could not generate matrix: %w", err)
	}
	for _, p := range models.Platforms {
		if entries := m.Platform(p); entries != nil {
			logger.Info("generated matrix", "platform", p, "entries", entries.Len())
		} else {
			logger.Debug("no jobs", "platform", p)
		}
	}

	return pipeline.Emit(stdout, m)
}

func loadCatalog(opts options, logger hclog.Logger) (models.Catalog, error) {
	var chooser mirror.Chooser = mirror.Random{}
	if opts.mirror != "" {
		chooser = mirror.Fixed(opts.mirror)
	}

	var (
		c   models.Catalog
		err error
	)
	if opts.catalogPath == "" {
		logger.Debug("using built-in catalog")
		c, err = catalog.Default(chooser)
	} else {
		logger.Debug("loading catalog", "path", opts.catalogPath)
		c, err = catalog.Load(opts.catalogPath, chooser)
	}
	if err != nil {
		return models.Catalog{}, err
	}

	if len(opts.pythonVersions) > 0 {
		c.PythonVersions = opts.pythonVersions
	}
	if err := catalog.Validate(c); err != nil {
		return models.Catalog{}, err
	}
	return c, nil
}

// Package seed implements the gophfund-seed tool: loading editorial
// content files into the campaign store and checking them without writing.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophfund/internal/server/services"
	"github.com/spf13/cobra"
)

const dsnEnv = "GOPHFUND_DATABASE_DSN"

// openStore is a test seam.
var openStore = repomanager.New

// NewRootCommand builds the command tree. Summaries go to the command's
// output stream, diagnostics to logger.
func NewRootCommand(logger logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "gophfund-seed",
		Short:         "Load campaign content into the gophfund store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newImportCommand(logger), newValidateCommand(logger))
	return root
}

func newImportCommand(logger logging.Logger) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a content file and write it to the store",
		Long:  `Imports categories, campaigns, doctors and hospitals from a YAML content file. Documents are matched by slug, so re-running an import updates in place.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), logger, dsn, args[0])
		},
	}

	defaultDSN := os.Getenv(dsnEnv)
	if defaultDSN == "" {
		defaultDSN = repomanager.MemoryDSN
	}
	cmd.Flags().StringVarP(&dsn, "dsn", "d", defaultDSN, "database DSN (env "+dsnEnv+")")
	return cmd
}

func newValidateCommand(logger logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a content file without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), logger, repomanager.MemoryDSN, args[0])
		},
	}
}

func runImport(ctx context.Context, out io.Writer, logger logging.Logger, dsn, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	rm, err := openStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer rm.Close()

	summary, err := services.NewImportService(rm, logger.With("module", "seed")).Import(ctx, f)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s: %d categories, %d campaigns, %d doctors, %d hospitals\n",
		path, summary.Categories, summary.Campaigns, summary.Doctors, summary.Hospitals)
	return err
}

// Package cli provides the doctext command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctext/internal/core/ports/driving"
	"github.com/custodia-labs/doctext/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by the entry point.
var (
	extractionService driving.ExtractionService
	archiveService    driving.ArchiveService
	settingsService   driving.SettingsService
)

// Services groups the driving ports the commands call.
type Services struct {
	Extraction driving.ExtractionService
	Archive    driving.ArchiveService
	Settings   driving.SettingsService
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "doctext",
	Short: "Identify documents and extract their text",
	Long: `doctext identifies the type and encoding of a document and extracts its
text through a format-specific pipeline: plain text, HTML, XML, Markdown,
PDF, XLSX, DOCX and PPTX. It also lists, extracts and creates zip files.

The same operations are served over HTTP (doctext serve) and MCP
(doctext mcp serve).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// SetServices injects the services used by every command.
func SetServices(s Services) {
	extractionService = s.Extraction
	archiveService = s.Archive
	settingsService = s.Settings
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout and
// logs to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

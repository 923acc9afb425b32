package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctext/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API under /api/file_util.

The listen address, per-client rate limit and input size limit come from
settings (see doctext config show); --addr overrides server.addr.

Endpoints:
  GET  /api/file_util/get_mime_type?file_path=
  GET  /api/file_util/get_document_type?file_path=
  GET  /api/file_util/get_sheet_names?file_path=
  POST /api/file_util/extract_excel_sheet      {"file_path", "sheet_name"}
  POST /api/file_util/extract_text_from_file   {"file_path"}
  GET  /api/file_util/extract_base64_to_text?extension=&base64_data=
  POST /api/file_util/extract_base64_to_text   {"extension", "base64_data"}
  GET  /api/file_util/list_zip_contents?file_path=
  POST /api/file_util/extract_zip              {"file_path", "extract_to", "password"}
  POST /api/file_util/create_zip               {"file_paths", "output_zip", "password"}
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if extractionService == nil || archiveService == nil {
		return errors.New("services not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	addr := settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	handler, err := httpapi.NewRouter(&httpapi.Ports{
		Extraction: extractionService,
		Archive:    archiveService,
	}, httpapi.OptionsFromSettings(*settings))
	if err != nil {
		return err
	}

	cmd.Printf("HTTP API listening on %s%s\n", addr, httpapi.Prefix)
	return httpapi.Serve(cmd.Context(), addr, handler)
}

package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

var identifyJSON bool

var identifyCmd = &cobra.Command{
	Use:   "identify <path>...",
	Short: "Detect the type and encoding of documents",
	Long: `Report the MIME type, character encoding and document type of each file.

A file that cannot be read or classified reports document type "unsupported".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().BoolVar(&identifyJSON, "json", false, "print one JSON object per file")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	results := make([]domain.Identification, 0, len(args))
	for _, path := range args {
		id, err := extractionService.Identify(cmd.Context(), path)
		if err != nil {
			return err
		}
		results = append(results, id)
	}

	if identifyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, id := range results {
			if err := enc.Encode(id); err != nil {
				return err
			}
		}
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	for i, id := range results {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(st.Title.Render(id.Path))
		cmd.Println(st.Label.Render("MIME type:"), orNone(st, id.MIMEType))
		cmd.Println(st.Label.Render("Encoding:"), orNone(st, id.Encoding))
		cmd.Println(st.Label.Render("Type:"), st.Value.Render(id.DocumentType.String()))
	}
	return nil
}

func orNone(st styles, s string) string {
	if s == "" {
		return st.Muted.Render("(unknown)")
	}
	return st.Value.Render(s)
}

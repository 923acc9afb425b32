package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	extractBase64 string
	extractExt    string
)

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract text from a document",
	Long: `Extract sanitized text from a document and print it to stdout.

The document type is detected from its content, not its name. Images and
unsupported types print nothing.

Pass --base64 to extract an inline payload instead of a file; use
--base64 - to read the payload from stdin and --ext to hint the type.

Examples:
  doctext extract report.pdf
  doctext extract --base64 "$(base64 notes.md)" --ext .md
  base64 slides.pptx | doctext extract --base64 - --ext pptx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractBase64, "base64", "", "base64 payload to extract (- reads stdin)")
	extractCmd.Flags().StringVar(&extractExt, "ext", "", "file extension hint for --base64")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	base64Set := cmd.Flags().Changed("base64")
	switch {
	case base64Set && len(args) > 0:
		return errors.New("pass either a path or --base64, not both")
	case !base64Set && len(args) == 0:
		return errors.New("a path or --base64 is required")
	}

	var (
		text string
		err  error
	)
	if base64Set {
		payload := extractBase64
		if payload == "-" {
			data, readErr := io.ReadAll(cmd.InOrStdin())
			if readErr != nil {
				return fmt.Errorf("read stdin: %w", readErr)
			}
			payload = strings.TrimSpace(string(data))
		}
		text, err = extractionService.ExtractBase64(cmd.Context(), extractExt, payload)
	} else {
		text, err = extractionService.ExtractFile(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	cmd.Print(text)
	return nil
}

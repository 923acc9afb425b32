package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <path>",
	Short: "List the sheets of an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

var sheetCmd = &cobra.Command{
	Use:   "sheet <path> <name>",
	Short: "Extract one sheet of an XLSX workbook",
	Long: `Extract one sheet as text: non-empty cells of each row joined by tabs,
one line per row. Dates print as 2006-01-02T15:04:05.`,
	Args: cobra.ExactArgs(2),
	RunE: runSheet,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	names, err := extractionService.SheetNames(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}

func runSheet(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	text, err := extractionService.ExtractSheet(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Print(text)
	return nil
}

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctext/internal/adapters/driving/watch"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Extract text from files as they change",
	Long: `Watch a directory and extract every file that is created or written.

The text of <name> is written to <name>.txt next to it, or under --out.
Hidden files are ignored. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "directory for .txt outputs (default: the watched directory)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	w, err := watch.New(extractionService, args[0], watchOut)
	if err != nil {
		return err
	}
	w.OnExtracted = func(source, output string) {
		cmd.Printf("%s -> %s\n", source, output)
	}
	return w.Run(cmd.Context())
}

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var zipPassword string

var zipCmd = &cobra.Command{
	Use:   "zip",
	Short: "List, extract and create zip files",
}

var zipListCmd = &cobra.Command{
	Use:   "list <archive>",
	Short: "List entries of a zip file",
	Args:  cobra.ExactArgs(1),
	RunE:  runZipList,
}

var zipExtractCmd = &cobra.Command{
	Use:   "extract <archive> <dest>",
	Short: "Extract a zip file into a directory",
	Long: `Extract every entry of a zip file into dest, creating it if needed.

Entries that would land outside dest are rejected before anything is
written. Encrypted entries need --password.`,
	Args: cobra.ExactArgs(2),
	RunE: runZipExtract,
}

var zipCreateCmd = &cobra.Command{
	Use:   "create <archive> <path>...",
	Short: "Create a zip file from files and directories",
	Long: `Create a zip file. Directories are added recursively and entries are
named relative to each input's parent directory. With --password every
entry is encrypted with AES-256.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runZipCreate,
}

func init() {
	zipExtractCmd.Flags().StringVarP(&zipPassword, "password", "p", "", "password for encrypted entries")
	zipCreateCmd.Flags().StringVarP(&zipPassword, "password", "p", "", "encrypt entries with this password")

	zipCmd.AddCommand(zipListCmd)
	zipCmd.AddCommand(zipExtractCmd)
	zipCmd.AddCommand(zipCreateCmd)
	rootCmd.AddCommand(zipCmd)
}

func runZipList(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	path, err := absolute(args[0])
	if err != nil {
		return err
	}
	entries, err := archiveService.List(cmd.Context(), path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		cmd.Println(e)
	}
	return nil
}

func runZipExtract(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	paths, err := absoluteAll(args)
	if err != nil {
		return err
	}
	if err := archiveService.Extract(cmd.Context(), paths[0], paths[1], zipPassword); err != nil {
		return err
	}
	cmd.Printf("Extracted %s to %s\n", args[0], args[1])
	return nil
}

func runZipCreate(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	paths, err := absoluteAll(args)
	if err != nil {
		return err
	}
	if err := archiveService.Create(cmd.Context(), paths[1:], paths[0], zipPassword); err != nil {
		return err
	}
	cmd.Printf("Created %s\n", args[0])
	return nil
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

func absoluteAll(paths []string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		abs, err := absolute(p)
		if err != nil {
			return nil, err
		}
		out[i] = abs
	}
	return out, nil
}

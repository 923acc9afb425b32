package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

The config directory defaults to ~/.doctext and can be moved with
DOCTEXT_CONFIG_DIR.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Values are parsed according to the key:

  server.addr        listen address, e.g. :8000
  server.rate_limit  requests per second per client (0 disables)
  server.rate_burst  burst size per client
  extract.max_bytes  largest accepted input in bytes (0 = unlimited)
  extract.temp_dir   where base64 payloads are staged
  log.verbose        true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	st := stylesFor(cmd.OutOrStdout())
	values := settingValues(settings)

	cmd.Println(st.Title.Render("Settings"), st.Muted.Render(settingsService.Path()))
	for _, key := range settingsService.Keys() {
		value := values[key]
		if value == "" {
			cmd.Println(st.Label.Render(key), st.Muted.Render("(default)"))
			continue
		}
		cmd.Println(st.Label.Render(key), st.Value.Render(value))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

// settingValues renders settings keyed like the config file.
func settingValues(s *domain.AppSettings) map[string]string {
	return map[string]string{
		"server.addr":       s.Server.Addr,
		"server.rate_limit": strconv.FormatFloat(s.Server.RateLimit, 'g', -1, 64),
		"server.rate_burst": strconv.Itoa(s.Server.RateBurst),
		"extract.max_bytes": strconv.FormatInt(s.Extract.MaxBytes, 10),
		"extract.temp_dir":  s.Extract.TempDir,
		"log.verbose":       strconv.FormatBool(s.Log.Verbose),
	}
}

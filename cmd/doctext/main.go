// Command doctext identifies documents and extracts their text.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/doctext/internal/adapters/driven/archive"
	"github.com/custodia-labs/doctext/internal/adapters/driven/config/file"
	"github.com/custodia-labs/doctext/internal/adapters/driven/detect"
	"github.com/custodia-labs/doctext/internal/adapters/driving/cli"
	"github.com/custodia-labs/doctext/internal/core/services"
	"github.com/custodia-labs/doctext/internal/extractors/docx"
	"github.com/custodia-labs/doctext/internal/extractors/pdf"
	"github.com/custodia-labs/doctext/internal/extractors/pptx"
	"github.com/custodia-labs/doctext/internal/extractors/text"
	"github.com/custodia-labs/doctext/internal/extractors/xlsx"
	"github.com/custodia-labs/doctext/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configDir, err := file.DefaultDir()
	if err != nil {
		return err
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	if settings.Log.Verbose {
		logger.SetVerbose(true)
	}

	classifier := detect.NewClassifier(detect.NewEncodingDetector())
	extractionService := services.NewExtractionService(classifier, services.Extractors{
		Text:         text.NewDefaultRouter(),
		PDF:          pdf.New(),
		Spreadsheet:  xlsx.New(),
		Word:         docx.New(),
		Presentation: pptx.New(),
	}, settings.Extract)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Extraction: extractionService,
		Archive:    services.NewArchiveService(archive.New()),
		Settings:   settingsService,
	})

	return cli.Execute(ctx)
}

package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/planu/pkg/config"
	"github.com/yurifrl/planu/pkg/csv"
	"github.com/yurifrl/planu/pkg/parser"
)

// Processor converts statement files into CSV siblings. For every input it
// writes the full table and, when any record comes out negative, a second
// file with just that subset.
type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
}

func NewProcessor(config *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: config,
		logger: logger,
		parser: parser.New(logger),
	}
}

func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if err := p.processEntry(dir, entry); err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

func (p *Processor) processEntry(dir string, entry os.DirEntry) error {
	if entry.IsDir() {
		return nil
	}

	fileName := strings.ToLower(entry.Name())
	if !strings.HasSuffix(fileName, ".pdf") && !strings.HasSuffix(fileName, ".txt") && !strings.HasSuffix(fileName, ".xls") {
		return nil
	}

	return p.ProcessFile(filepath.Join(dir, entry.Name()))
}

func (p *Processor) ProcessFile(inputPath string) error {
	fileBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	table, err := p.parser.ProcessBytes(fileBytes, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to process file: %w", err)
	}

	outFile := p.determineOutputPath(inputPath, "")
	if err := os.WriteFile(outFile, csv.Create(table, nil), 0644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	negativos := table.Negativos()
	if len(negativos) > 0 {
		negFile := p.determineOutputPath(inputPath, "negativos")
		if err := os.WriteFile(negFile, csv.Create(table, csv.Negativos), 0644); err != nil {
			return fmt.Errorf("error writing negativos file: %w", err)
		}
		p.logger.Info("negative records found", "input", inputPath, "count", len(negativos), "output", negFile)
	}

	p.logger.Info("processed file successfully", "input", inputPath, "records", len(table), "output", outFile)
	return nil
}

func (p *Processor) determineOutputPath(inputPath, suffix string) string {
	fileName := filepath.Base(inputPath)
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	if suffix != "" {
		baseName = baseName + "-" + suffix
	}
	if p.config.GetOutputPath() != "" {
		return filepath.Join(p.config.GetOutputPath(), baseName+"-planu.csv")
	}
	return filepath.Join(filepath.Dir(inputPath), baseName+"-planu.csv")
}

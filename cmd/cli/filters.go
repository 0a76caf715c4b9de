package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"

	"github.com/yurifrl/planu/pkg/csv"
	"github.com/yurifrl/planu/pkg/models"
	"github.com/yurifrl/planu/pkg/parser"
)

type filters struct {
	startDate string
	endDate   string
	tipoPF    string
	prestador string
	negativos bool
}

const dateLayout = "02/01/2006"

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(r *models.Record) bool {
		if f.negativos && !csv.Negativos(r) {
			return false
		}
		if f.startDate != "" {
			start, _ := time.Parse(dateLayout, f.startDate)
			date, err := time.Parse(dateLayout, r.Data)
			if err != nil || date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			end, _ := time.Parse(dateLayout, f.endDate)
			date, err := time.Parse(dateLayout, r.Data)
			if err != nil || date.After(end) {
				return false
			}
		}
		if f.tipoPF != "" {
			if r.TipoPF == nil || !strings.EqualFold(*r.TipoPF, f.tipoPF) {
				return false
			}
		}
		if f.prestador != "" {
			if r.Prestador == nil || !strings.Contains(strings.ToLower(*r.Prestador), strings.ToLower(f.prestador)) {
				return false
			}
		}
		return true
	}
}

type FileProcessor struct {
	logger  *log.Logger
	parser  *parser.Parser
	filters *filters
}

func NewFileProcessor(logger *log.Logger, filters *filters) *FileProcessor {
	return &FileProcessor{
		logger:  logger,
		parser:  parser.New(logger),
		filters: filters,
	}
}

func (p *FileProcessor) ProcessDirectory(inputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := p.ProcessFile(filepath.Join(inputDir, entry.Name())); err != nil {
			p.logger.Warn("error processing file", "error", err)
		}
	}

	return nil
}

func (p *FileProcessor) ProcessFile(inputPath string) error {
	fileBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	table, err := p.parser.ProcessBytes(fileBytes, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to process file: %w", err)
	}

	if dumpTable {
		pp.Println(table)
		return nil
	}

	outputBytes := csv.Create(table, p.filters.toFilterFunc())

	fmt.Print(string(outputBytes))
	return nil
}

// Preview parses a file and reports record counts without emitting CSV.
func (p *FileProcessor) Preview(inputPath string) (total, negativos int, err error) {
	fileBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read file: %w", err)
	}

	table, err := p.parser.ProcessBytes(fileBytes, filepath.Base(inputPath))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to process file: %w", err)
	}

	return len(table), len(table.Negativos()), nil
}

package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yurifrl/planu/pkg/extractor"
	"github.com/yurifrl/planu/pkg/models"
)

// ParseDemonstrativoPDF extracts the page texts from a PDF statement and
// scans the newline-joined result. The scanner only cares about the flat
// line sequence; page boundaries carry no meaning.
func (p *Parser) ParseDemonstrativoPDF(data []byte) (models.Table, error) {
	pages, err := extractor.ExtractPages(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("error extracting pdf text: %w", err)
	}
	p.logger.Debug("extracted pdf text", "pages", len(pages))

	table := models.NewTable(Scan(strings.Join(pages, "\n")))
	if len(table) == 0 {
		p.logger.Warn("no records found in pdf statement")
	}
	return table, nil
}

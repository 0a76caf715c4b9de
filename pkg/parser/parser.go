package parser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/planu/pkg/models"
)

type FileType string

const (
	DemonstrativoPDF FileType = "demonstrativo_pdf"
	DemonstrativoTXT FileType = "demonstrativo_txt"
	DemonstrativoXLS FileType = "demonstrativo_xls"
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessBytes routes the file to the right text source by extension and
// runs the block scanner over the resulting line sequence.
func (p *Parser) ProcessBytes(data []byte, filename string) (models.Table, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case DemonstrativoPDF:
		return p.ParseDemonstrativoPDF(data)
	case DemonstrativoTXT:
		return p.ParseDemonstrativoTXT(data)
	case DemonstrativoXLS:
		return p.ParseDemonstrativoXLS(data)
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("unknown file type")
	}
}

// ParseDemonstrativoTXT parses statement text that was already extracted
// from the document.
func (p *Parser) ParseDemonstrativoTXT(data []byte) (models.Table, error) {
	table := models.NewTable(Scan(string(data)))
	if len(table) == 0 {
		p.logger.Warn("no records found in statement text")
	}
	return table, nil
}

func detectType(filename string) FileType {
	lowerFilename := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lowerFilename, ".pdf"):
		return DemonstrativoPDF
	case strings.HasSuffix(lowerFilename, ".txt"):
		return DemonstrativoTXT
	case strings.HasSuffix(lowerFilename, ".xls"):
		return DemonstrativoXLS
	}
	return ""
}

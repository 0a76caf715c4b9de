package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/yurifrl/planu/pkg/models"
)

// ParseDemonstrativoXLS handles XLS exports of the statement. Each row is
// space-joined back into a single text line and fed through the same block
// scanner as the PDF text, so both sources share one grammar.
func (p *Parser) ParseDemonstrativoXLS(data []byte) (models.Table, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(1000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	var lines []string
	for _, row := range rows {
		line := cleanSpaces(strings.Join(row, " "))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	table := models.NewTable(Scan(strings.Join(lines, "\n")))
	if len(table) == 0 {
		p.logger.Warn("no records found in xls statement")
	}
	return table, nil
}

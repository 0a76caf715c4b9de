package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yurifrl/planu/pkg/models"
)

// Heading opens a record block: peg id, guide number, date and the
// procedure code. Trailing closes one: a quantity followed by the paid
// amount and the co-participation, anchored at line end.
var (
	headRegex = regexp.MustCompile(`^(?P<peg>\d{6,})\s+(?P<guia>\d+)\s+(?P<data>\d{2}/\d{2}/\d{4})\s+(?P<codigo>\d\.\d{2}\.\d{2}\.\d{2}-\d)`)
	tailRegex = regexp.MustCompile(`(?P<qtd>\d+)\s+R\$\s*[\d\.,]+\s+R\$\s*[\d\.,]+$`)
	valsRegex = regexp.MustCompile(`(?P<qtd>\d+)\s+R\$\s*(?P<vl_pago>[\d\.,]+)\s+R\$\s*(?P<copart>[\d\.,]+)$`)

	spaceRegex = regexp.MustCompile(`\s+`)
)

// tipoPF labels partition the statement; the current label applies to every
// record until the next one appears.
var tipoPFLabels = map[string]bool{
	"CONSULTA": true,
	"EXAME":    true,
	"OUTROS":   true,
}

func cleanSpaces(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}

// tipoPFOf returns the category label carried by the line, or "" when the
// line is not a category marker.
func tipoPFOf(line string) string {
	up := strings.ToUpper(strings.TrimSpace(line))
	if tipoPFLabels[up] {
		return up
	}
	return ""
}

// headMatch holds the captured heading fields, decoded once at match time.
type headMatch struct {
	peg    string
	guia   string
	data   string
	codigo string
}

func matchHead(line string) *headMatch {
	m := headRegex.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &headMatch{
		peg:    m[headRegex.SubexpIndex("peg")],
		guia:   m[headRegex.SubexpIndex("guia")],
		data:   m[headRegex.SubexpIndex("data")],
		codigo: m[headRegex.SubexpIndex("codigo")],
	}
}

// blockScanner groups classified lines into record blocks. It owns the
// current category, the active heading and the accumulated lines for the
// one in-flight block; a fresh scanner is used per parse call.
type blockScanner struct {
	tipoPF  *string
	head    *headMatch
	lines   []string
	records []*models.Record
}

// feed drives the state transitions for a single cleaned line.
func (s *blockScanner) feed(line string) {
	if tp := tipoPFOf(line); tp != "" {
		s.flush()
		s.tipoPF = &tp
		return
	}

	if head := matchHead(line); head != nil {
		s.flush()
		s.head = head
		s.lines = []string{line}
		return
	}

	if s.head == nil {
		// No block to attach the line to.
		return
	}

	s.lines = append(s.lines, line)
	if tailRegex.MatchString(line) {
		s.flush()
	}
}

// flush closes the in-flight block and builds its record. Blocks without a
// heading are silently discarded.
func (s *blockScanner) flush() {
	head, lines := s.head, s.lines
	s.head = nil
	s.lines = nil
	if head == nil || len(lines) == 0 {
		return
	}

	// The trailing line is the LAST one carrying the trailing pattern;
	// block bodies can contain earlier false positives.
	tailLine := ""
	for i := len(lines) - 1; i >= 0; i-- {
		if tailRegex.MatchString(lines[i]) {
			tailLine = lines[i]
			break
		}
	}

	record := &models.Record{
		TipoPF: s.tipoPF,
		Peg:    head.peg,
		Guia:   head.guia,
		Data:   head.data,
		Codigo: head.codigo,
	}

	if tailLine != "" {
		if m := valsRegex.FindStringSubmatch(tailLine); m != nil {
			if qtd, err := strconv.Atoi(m[valsRegex.SubexpIndex("qtd")]); err == nil {
				record.Qtd = &qtd
			}
			record.ValorPago = ParseMoney(m[valsRegex.SubexpIndex("vl_pago")])
			record.Coparticipacao = ParseMoney(m[valsRegex.SubexpIndex("copart")])
		}
	}

	var body []string
	for _, l := range lines {
		if l == tailLine {
			continue
		}
		if headRegex.MatchString(l) {
			continue
		}
		body = append(body, l)
	}

	if len(body) > 0 {
		prestador := cleanSpaces(body[len(body)-1])
		record.Prestador = &prestador
		if len(body) > 1 {
			descricao := cleanSpaces(strings.Join(body[:len(body)-1], " "))
			record.Descricao = &descricao
		}
	}

	s.records = append(s.records, record)
}

// Scan partitions the raw statement text into record blocks and returns the
// extracted records in document order. Lines outside any block are dropped;
// malformed values degrade to absent fields, never to an error.
func Scan(text string) []*models.Record {
	s := &blockScanner{}
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s.feed(cleanSpaces(raw))
	}
	s.flush()
	return s.records
}

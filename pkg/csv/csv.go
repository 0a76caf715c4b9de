package csv

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/yurifrl/planu/pkg/models"
)

// utf8BOM makes the output open cleanly in spreadsheet software.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{
	"tipo_pf", "peg", "guia", "data", "codigo",
	"descricao", "prestador", "qtd",
	"valor_pago", "coparticipacao", "novo_valor",
}

type FilterFunc func(*models.Record) bool

// Create serializes the table as UTF-8 CSV with a byte-order marker.
// Absent fields become empty cells. A nil filter keeps every record.
func Create(table models.Table, filter FilterFunc) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Write(header)
	for _, r := range table {
		if filter != nil && !filter(r) {
			continue
		}
		w.Write([]string{
			str(r.TipoPF),
			r.Peg,
			r.Guia,
			r.Data,
			r.Codigo,
			str(r.Descricao),
			str(r.Prestador),
			intStr(r.Qtd),
			floatStr(r.ValorPago),
			floatStr(r.Coparticipacao),
			floatStr(r.NovoValor),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// Negativos keeps only records whose novo_valor is below zero.
func Negativos(r *models.Record) bool {
	return r.NovoValor != nil && *r.NovoValor < 0
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intStr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatStr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

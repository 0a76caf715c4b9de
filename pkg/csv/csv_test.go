package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yurifrl/planu/pkg/models"
)

func sptr(s string) *string   { return &s }
func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

func sampleTable() models.Table {
	return models.Table{
		{
			TipoPF:         sptr("CONSULTA"),
			Peg:            "123456",
			Guia:           "789",
			Data:           "01/02/2023",
			Codigo:         "1.23.45.67-8",
			Prestador:      sptr("Dr. Silva"),
			Qtd:            iptr(2),
			ValorPago:      fptr(100.00),
			Coparticipacao: fptr(30.00),
			NovoValor:      fptr(0),
		},
		{
			Peg:    "654321",
			Guia:   "111",
			Data:   "02/02/2023",
			Codigo: "1.11.11.11-1",
		},
		{
			TipoPF:         sptr("EXAME"),
			Peg:            "777777",
			Guia:           "5",
			Data:           "03/02/2023",
			Codigo:         "2.01.02.03-4",
			Prestador:      sptr("Laboratorio XYZ"),
			Qtd:            iptr(1),
			ValorPago:      fptr(50.00),
			Coparticipacao: fptr(40.00),
			NovoValor:      fptr(-25),
		},
	}
}

func TestCreate(t *testing.T) {
	out := Create(sampleTable(), nil)

	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("expected UTF-8 BOM prefix")
	}

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}

	wantHeader := "tipo_pf,peg,guia,data,codigo,descricao,prestador,qtd,valor_pago,coparticipacao,novo_valor"
	if lines[0] != wantHeader {
		t.Errorf("header mismatch:\nwant %s\ngot  %s", wantHeader, lines[0])
	}

	if lines[1] != "CONSULTA,123456,789,01/02/2023,1.23.45.67-8,,Dr. Silva,2,100.00,30.00,0.00" {
		t.Errorf("unexpected first row: %s", lines[1])
	}

	// Absent fields serialize as empty cells, not zeros.
	if lines[2] != ",654321,111,02/02/2023,1.11.11.11-1,,,,,," {
		t.Errorf("unexpected empty-fields row: %s", lines[2])
	}
}

func TestCreateNegativosFilter(t *testing.T) {
	out := Create(sampleTable(), Negativos)

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "777777") {
		t.Errorf("expected only the negative record, got: %s", lines[1])
	}
}

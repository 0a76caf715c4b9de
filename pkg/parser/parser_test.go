package parser

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestProcessBytes(t *testing.T) {
	content := []byte(`CONSULTA
123456 789 01/02/2023 1.23.45.67-8
Dr. Silva
2 R$ 100,00 R$ 30,00
EXAME
7654321 12 05/10/2022 2.01.02.03-4
Laboratorio XYZ
1 R$ 200,00 R$ 10,00`)

	parser := New(log.Default())
	table, err := parser.ProcessBytes(content, "demonstrativo.txt")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	if len(table) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table))
	}

	first := table[0]
	if first.Peg != "123456" || first.Guia != "789" || first.Codigo != "1.23.45.67-8" {
		t.Errorf("first record heading mismatch: %+v", first)
	}
	if first.Data != "01/02/2023" {
		t.Errorf("expected normalized date 01/02/2023, got %q", first.Data)
	}
	// round(100*0.30 - 30) = 0 — a real zero, not absent
	if first.NovoValor == nil || *first.NovoValor != 0 {
		t.Errorf("expected novo_valor 0, got %v", first.NovoValor)
	}

	second := table[1]
	// round(200*0.30 - 10) = 50
	if second.NovoValor == nil || *second.NovoValor != 50 {
		t.Errorf("expected novo_valor 50, got %v", second.NovoValor)
	}
	if second.TipoPF == nil || *second.TipoPF != "EXAME" {
		t.Errorf("expected tipo_pf EXAME, got %v", second.TipoPF)
	}
}

func TestProcessBytesEmptyStatement(t *testing.T) {
	parser := New(log.Default())
	table, err := parser.ProcessBytes([]byte("nenhum registro aqui"), "vazio.txt")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d records", len(table))
	}
}

func TestProcessBytesUnknownType(t *testing.T) {
	parser := New(log.Default())
	if _, err := parser.ProcessBytes([]byte("whatever"), "statement.docx"); err == nil {
		t.Error("expected error for unknown file type")
	}
}

func TestDetectType(t *testing.T) {
	cases := []struct {
		filename string
		want     FileType
	}{
		{"demonstrativo.pdf", DemonstrativoPDF},
		{"Demonstrativo-2023.PDF", DemonstrativoPDF},
		{"extraido.txt", DemonstrativoTXT},
		{"planilha.xls", DemonstrativoXLS},
		{"outro.csv", ""},
	}
	for _, c := range cases {
		if got := detectType(c.filename); got != c.want {
			t.Errorf("detectType(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}

package models

// Record is a single extracted line-item from a demonstrativo statement.
// Pointer fields are absent when the source block did not carry the value;
// a nil amount is distinguishable from a real zero.
type Record struct {
	TipoPF         *string  `json:"tipo_pf"`
	Peg            string   `json:"peg"`
	Guia           string   `json:"guia"`
	Data           string   `json:"data"`
	Codigo         string   `json:"codigo"`
	Descricao      *string  `json:"descricao"`
	Prestador      *string  `json:"prestador"`
	Qtd            *int     `json:"qtd"`
	ValorPago      *float64 `json:"valor_pago"`
	Coparticipacao *float64 `json:"coparticipacao"`
	NovoValor      *float64 `json:"novo_valor"`
}

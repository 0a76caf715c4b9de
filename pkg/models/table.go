package models

import (
	"math"
	"time"
)

const dateLayout = "02/01/2006"

// Table is the ordered sequence of records as they were flushed from the
// document, annotated with the derived novo_valor metric.
type Table []*Record

// NewTable annotates records in document order: novo_valor is 30% of the
// paid amount minus the co-participation, rounded to the nearest integer,
// and dates are normalized back to DD/MM/YYYY. Records missing either
// amount keep a nil novo_valor; dates that fail to parse become empty.
func NewTable(records []*Record) Table {
	for _, r := range records {
		if r.ValorPago != nil && r.Coparticipacao != nil {
			v := math.Round(*r.ValorPago*0.30 - *r.Coparticipacao)
			r.NovoValor = &v
		}
		if r.Data != "" {
			d, err := time.Parse(dateLayout, r.Data)
			if err != nil {
				r.Data = ""
				continue
			}
			r.Data = d.Format(dateLayout)
		}
	}
	return Table(records)
}

// Negativos returns the subset of records whose novo_valor is below zero.
// Records without a novo_valor are excluded.
func (t Table) Negativos() Table {
	var out Table
	for _, r := range t {
		if r.NovoValor != nil && *r.NovoValor < 0 {
			out = append(out, r)
		}
	}
	return out
}

package parser

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"R$ 1.234,56", 1234.56, true},
		{"R$1.234,56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"R$ 0,50", 0.50, true},
		{"100,00", 100.00, true},
		{"texto R$ 55,50 ao final", 55.50, true},
		{"", 0, false},
		{"abc", 0, false},
		{",,,", 0, false},
	}

	for _, c := range cases {
		got := ParseMoney(c.in)
		if !c.ok {
			if got != nil {
				t.Errorf("ParseMoney(%q) = %v, want absent", c.in, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseMoney(%q) = absent, want %v", c.in, c.want)
			continue
		}
		if *got != c.want {
			t.Errorf("ParseMoney(%q) = %v, want %v", c.in, *got, c.want)
		}
	}
}

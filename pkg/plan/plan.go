package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan describes a batch of statement files to convert.
type Plan struct {
	OutputPath string      `yaml:"output_path"`
	Statements []Statement `yaml:"statements"`
}

// Statement is a single file in the plan. When Negativos is set only the
// records with a negative novo_valor are exported.
type Statement struct {
	File      string `yaml:"file"`
	Negativos bool   `yaml:"negativos"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Statements) == 0 {
		return nil, fmt.Errorf("plan has no statements")
	}
	return &p, nil
}

func (p *Plan) Print() {
	fmt.Printf("Output path: %s\n", p.OutputPath)
	for i, st := range p.Statements {
		fmt.Printf("[%d] file=%s negativos=%t\n", i+1, st.File, st.Negativos)
	}
}

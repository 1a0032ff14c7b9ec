package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	valid := []string{
		"034.400.159-80",
		"03440015980",
		"111.444.777-35",
		"529.982.247-25",
	}
	for _, cpf := range valid {
		assert.True(t, IsCPFValid(cpf), "expected valid: %s", cpf)
	}

	invalid := []string{
		"",
		"123",
		"123.456.789-00",
		"111.111.111-11",
		"034.400.159-81",
		"0344001598",
		"034400159800",
	}
	for _, cpf := range invalid {
		assert.False(t, IsCPFValid(cpf), "expected invalid: %s", cpf)
	}
}

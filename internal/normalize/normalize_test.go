package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits_StripsFormatting(t *testing.T) {
	// máscaras diferentes, mesmo CPF
	variants := []string{
		"034.400.159-80",
		"03440015980",
		"034 400 159 80",
		"034-400-159-80",
		"(034)400.159-80",
	}

	for _, v := range variants {
		assert.Equal(t, "03440015980", Digits(v), "input %q", v)
	}
}

func TestDigits_Phone(t *testing.T) {
	assert.Equal(t, "11987654321", Digits("(11) 98765-4321"))
	assert.Equal(t, "1133334444", Digits("11 3333-4444"))
}

func TestDigits_Empty(t *testing.T) {
	assert.Equal(t, "", Digits(""))
	assert.Equal(t, "", Digits("abc -()"))
}

func TestName_CaseFolds(t *testing.T) {
	variants := []string{
		"Anderson Luiz Dias",
		"ANDERSON LUIZ DIAS",
		"anderson luiz dias",
	}

	for _, v := range variants {
		assert.Equal(t, "anderson luiz dias", Name(v), "input %q", v)
	}
}

func TestName_PreservesWhitespace(t *testing.T) {
	// só a caixa muda; espaço à margem distingue nomes
	assert.Equal(t, "  anderson  ", Name("  Anderson  "))
	assert.NotEqual(t, Name("Anderson"), Name(" Anderson"))
}

func TestField(t *testing.T) {
	assert.Equal(t, "dora", Field("name", "DORA"))
	assert.Equal(t, "03440015980", Field("cpf", "034.400.159-80"))
	assert.Equal(t, "11987654321", Field("phone", "(11) 98765-4321"))

	// campo desconhecido nunca casa
	assert.Equal(t, "", Field("email", "x@y.com"))
}

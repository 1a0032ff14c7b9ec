package normalize

import "strings"

// Formas canônicas usadas somente para comparação de igualdade.
// O valor original é sempre o que fica exposto na API.

// Name baixa a caixa do nome inteiro. Espaços são preservados:
// "Ana" e " Ana" são nomes diferentes.
func Name(s string) string {
	return strings.ToLower(s)
}

// Digits remove tudo que não é dígito decimal (pontos, traços,
// parênteses, espaços de CPF e telefone).
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Field aplica a regra de normalização do campo indicado.
// Campos desconhecidos voltam vazios e não casam com nada.
func Field(field, value string) string {
	switch field {
	case "name":
		return Name(value)
	case "cpf", "phone":
		return Digits(value)
	default:
		return ""
	}
}

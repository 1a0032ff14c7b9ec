package validators

import "github.com/VidaPetServices01/petshop-manager/internal/normalize"

// IsCPFValid confere os dois dígitos verificadores do CPF.
// Aceita o valor com ou sem máscara.
func IsCPFValid(cpf string) bool {
	digits := normalize.Digits(cpf)
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	d := make([]int, 11)
	for i := 0; i < 11; i++ {
		d[i] = int(digits[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	if (sum*10)%11%10 != d[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	return (sum*10)%11%10 == d[10]
}

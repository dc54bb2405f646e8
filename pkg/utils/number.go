package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafePercentage calcula (parte/total)*100 arredondado para duas casas.
// Retorna 0 quando o total é zero para evitar divisão por zero.
func SafePercentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}

package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundWithTwoDecimalPlace arredonda para duas casas sobre o valor decimal exato de f,
// com empate para o par (0.125 -> 0.12, 0.135 -> 0.14)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return math.RoundToEven(f*100) / 100
	}
	return rounded
}

// FormatRate formata uma taxa sempre com pelo menos uma casa decimal (5.0, 3.33)
func FormatRate(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

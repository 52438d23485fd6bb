package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// FormatThousands formata um inteiro com separador de milhar (1,234,567)
func FormatThousands(value int64) string {
	return printer.Sprintf("%d", value)
}

// FormatYen formata um valor em ienes (¥1,234,567)
func FormatYen(value int64) string {
	return "¥" + FormatThousands(value)
}

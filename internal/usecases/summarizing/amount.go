package summarizing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount interpreta valores monetários digitados livremente
// ("S/ 1.234,56", "1,234.56", "1.000", "15%").
//
// Regra:
//   - descarta tudo que não for dígito, '.', ',' ou '-';
//   - separadores antes do primeiro dígito pertencem ao símbolo ("S/.") e
//     são descartados, preservando o sinal;
//   - com '.' e ',' presentes, o separador que aparece por último é o decimal;
//   - com um único tipo de separador repetido, ele é de milhar;
//   - com um único separador seguido de exatamente 3 dígitos (e parte inteira
//     diferente de zero), ele é de milhar; caso contrário é decimal.
//
// Retorna false quando o resultado não é um número.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := normalizeAmount(s)
	if cleaned == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

// ParseAmountOrZero é a versão leniente: valores inválidos viram zero
func ParseAmountOrZero(s string) decimal.Decimal {
	value, _ := ParseAmount(s)
	return value
}

func normalizeAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := trimSymbolSeparators(b.String())

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastDot >= 0:
		cleaned = resolveSeparator(cleaned, ".")
	case lastComma >= 0:
		cleaned = resolveSeparator(cleaned, ",")
	}

	return cleaned
}

func resolveSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}

	idx := strings.Index(s, sep)
	intPart := strings.TrimLeft(s[:idx], "-")
	fracPart := s[idx+1:]

	if len(fracPart) == 3 && intPart != "" && strings.Trim(intPart, "0") != "" {
		return strings.Replace(s, sep, "", 1)
	}

	return strings.Replace(s, sep, ".", 1)
}

func trimSymbolSeparators(s string) string {
	first := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if first < 0 {
		return ""
	}

	if strings.Contains(s[:first], "-") {
		return "-" + s[first:]
	}
	return s[first:]
}

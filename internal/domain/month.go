package domain

import (
	"errors"
	"strings"
)

// Month é o nome de um mês do calendário, como usado nas planilhas
type Month string

const (
	January   Month = "Enero"
	February  Month = "Febrero"
	March     Month = "Marzo"
	April     Month = "Abril"
	May       Month = "Mayo"
	June      Month = "Junio"
	July      Month = "Julio"
	August    Month = "Agosto"
	September Month = "Septiembre"
	October   Month = "Octubre"
	November  Month = "Noviembre"
	December  Month = "Diciembre"
)

// Months lista os meses em ordem de calendário
var Months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// ErrInvalidMonth indica um nome de mês fora da lista
var ErrInvalidMonth = errors.New("mês inválido")

// ParseMonth resolve um nome de mês sem diferenciar maiúsculas
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, m := range Months {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", ErrInvalidMonth
}

// Index retorna a posição do mês (0 = Enero) ou -1
func (m Month) Index() int {
	for i, candidate := range Months {
		if candidate == m {
			return i
		}
	}
	return -1
}

func (m Month) String() string {
	return string(m)
}

// Products é o catálogo fixo de produtos de crédito
var Products = []string{
	"Préstamo personal",
	"Préstamo prendario",
	"Préstamo vehicular",
	"Préstamo hipotecario",
	"Préstamo empresarial",
	"Préstamo por convenio",
}

// MatchProduct resolve o nome de produto do catálogo sem diferenciar maiúsculas
func MatchProduct(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Products {
		if strings.EqualFold(p, s) {
			return p, true
		}
	}
	return "", false
}

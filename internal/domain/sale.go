package domain

import "time"

// Canais de aquisição usados na geração dos dados de exemplo
const (
	ChannelInstagram = "Instagram"
	ChannelFacebook  = "Facebook"
	ChannelGoogle    = "Google"
	ChannelReferral  = "紹介"
	ChannelDirect    = "直接"
)

// SalesChannels lista os canais na ordem em que são sorteados
var SalesChannels = []string{ChannelInstagram, ChannelFacebook, ChannelGoogle, ChannelReferral, ChannelDirect}

// SaleRecord é um contrato fechado. Os registros são gerados uma vez e só agregados.
type SaleRecord struct {
	Date    time.Time `json:"date"`
	Service string    `json:"service"`
	Amount  int64     `json:"amount"`
	Channel string    `json:"channel"`
}

// TotalSales soma o valor de todos os registros
func TotalSales(sales []SaleRecord) int64 {
	var total int64
	for _, sale := range sales {
		total += sale.Amount
	}
	return total
}

// SalesByChannel agrega o total vendido por canal de aquisição
func SalesByChannel(sales []SaleRecord) map[string]int64 {
	totals := make(map[string]int64)
	for _, sale := range sales {
		totals[sale.Channel] += sale.Amount
	}
	return totals
}

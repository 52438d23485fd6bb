package domain

import "time"

// SeasonName identifica uma das quatro estações usadas nos textos de marketing
type SeasonName string

const (
	Spring SeasonName = "春"
	Summer SeasonName = "夏"
	Fall   SeasonName = "秋"
	Winter SeasonName = "冬"
)

// Season reúne o material estático de uma estação: palavras-chave,
// serviços recomendados, campanhas, paleta de cores e a mensagem sazonal.
// Os valores são construídos pelas funções deste arquivo e nunca alterados.
type Season struct {
	Name      SeasonName `json:"name"`
	Keywords  []string   `json:"keywords"`
	Services  []string   `json:"services"`
	Campaigns []string   `json:"campaigns"`
	Colors    []string   `json:"colors"`
	Message   string     `json:"message"`
}

// DefaultSeasonalMessage é usada quando a estação não tem mensagem própria
const DefaultSeasonalMessage = "素敵な外構でお過ごしください✨"

// SeasonForMonth mapeia um mês para a sua estação:
// 3-5 primavera, 6-8 verão, 9-11 outono e o restante inverno.
func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.March, time.April, time.May:
		return Season{
			Name:      Spring,
			Keywords:  []string{"新緑", "花壇", "春の庭づくり", "新生活"},
			Services:  []string{"ガーデニング", "花壇設置", "芝張り"},
			Campaigns: []string{"春の庭づくりキャンペーン", "新築外構相談会"},
			Colors:    []string{"#90EE90", "#98FB98", "#F0FFF0"},
			Message:   "新緑の季節に新しい庭でお過ごしください🌱",
		}
	case time.June, time.July, time.August:
		return Season{
			Name:      Summer,
			Keywords:  []string{"日よけ", "パーゴラ", "夏の快適空間"},
			Services:  []string{"パーゴラ設置", "日よけ工事", "水栓設置"},
			Campaigns: []string{"夏の快適外構キャンペーン", "日よけ工事特別価格"},
			Colors:    []string{"#87CEEB", "#E0F6FF", "#B0E0E6"},
			Message:   "夏の日差しに映える素敵な外構です☀️",
		}
	case time.September, time.October, time.November:
		return Season{
			Name:      Fall,
			Keywords:  []string{"紅葉", "年末工事", "冬支度"},
			Services:  []string{"メンテナンス", "冬支度工事", "落ち葉対策"},
			Campaigns: []string{"年末工事キャンペーン", "冬支度メンテナンス"},
			Colors:    []string{"#DEB887", "#D2691E", "#CD853F"},
			Message:   "紅葉の季節も美しい庭になりました🍁",
		}
	default:
		return Season{
			Name:      Winter,
			Keywords:  []string{"雪対策", "防寒", "春の準備"},
			Services:  []string{"雪対策工事", "防寒対策", "春工事準備"},
			Campaigns: []string{"雪対策キャンペーン", "春工事早期予約"},
			Colors:    []string{"#F0F8FF", "#E6E6FA", "#F5F5F5"},
			Message:   "雪化粧も美しい冬の庭です❄️",
		}
	}
}

// CurrentSeason retorna a estação correspondente ao mês de now
func CurrentSeason(now time.Time) Season {
	return SeasonForMonth(now.Month())
}

// SeasonalMessage retorna a mensagem da estação ou a mensagem padrão
func (s Season) SeasonalMessage() string {
	if s.Message == "" {
		return DefaultSeasonalMessage
	}
	return s.Message
}

// PrimaryColor é a cor de fundo usada para a estação
func (s Season) PrimaryColor() string {
	if len(s.Colors) == 0 {
		return "#FFFFFF"
	}
	return s.Colors[0]
}

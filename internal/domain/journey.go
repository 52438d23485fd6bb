package domain

// JourneyStep é uma etapa do funil de clientes exibida no dashboard
type JourneyStep struct {
	Step           string  `json:"step"`
	Channel        string  `json:"channel"`
	Visitors       int     `json:"visitors"`
	ConversionRate float64 `json:"conversion_rate"`
	Action         string  `json:"action"`
}

// CustomerJourney retorna o funil estático de comportamento dos clientes
func CustomerJourney() []JourneyStep {
	return []JourneyStep{
		{Step: "認知", Channel: "Instagram投稿", Visitors: 1200, ConversionRate: 8.5, Action: "サイト訪問"},
		{Step: "関心", Channel: "サイト閲覧", Visitors: 102, ConversionRate: 25.0, Action: "カタログダウンロード"},
		{Step: "検討", Channel: "カタログ閲覧", Visitors: 26, ConversionRate: 60.0, Action: "問い合わせ"},
		{Step: "決定", Channel: "問い合わせ対応", Visitors: 15, ConversionRate: 70.0, Action: "契約成立"},
	}
}

// OptimalPostTimes retorna os quatro horários recomendados para publicação
func OptimalPostTimes() []string {
	return []string{
		"平日 19:00-21:00（帰宅後のリラックスタイム）",
		"土曜日 10:00-12:00（週末の計画時間）",
		"日曜日 15:00-17:00（家族での相談時間）",
		"平日 12:00-13:00（ランチタイムチェック）",
	}
}

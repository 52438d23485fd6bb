package utils

import (
	"fmt"
	"time"
)

var weekdayJapanese = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// ParseDate converte uma data no formato 2006-01-02. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// IsWeekday indica se a data cai de segunda a sexta
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// FormatJapaneseDate formata como 01月02日（月）
func FormatJapaneseDate(date time.Time) string {
	return fmt.Sprintf("%s（%s）", date.Format("01月02日"), weekdayJapanese[date.Weekday()])
}

// FormatTimestamp formata como 2006年01月02日 15:04:05
func FormatTimestamp(t time.Time) string {
	return t.Format("2006年01月02日 15:04:05")
}

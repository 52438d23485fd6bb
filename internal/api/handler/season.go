package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/exterior-marketing/internal/domain"
)

type SeasonResponse struct {
	domain.Season
	PrimaryColor string `json:"primary_color"`
}

func GetSeason(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season := domain.CurrentSeason(now())
		writeJSON(w, http.StatusOK, SeasonResponse{Season: season, PrimaryColor: season.PrimaryColor()})
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/exterior-marketing/internal/api/handler/router"
	"github.com/vfg2006/exterior-marketing/internal/usecases/analyzing"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
)

func Healthcheck(db DatabasePinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service OperatorLogin) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(service analyzing.Analyzer, renderer DashboardRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, renderer),
		},
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/dashboard/runs",
			Method:  http.MethodGet,
			Handler: ListDashboardRuns(service),
		},
	}
}

func Contents(service contenting.ContentGenerator, now func() time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts",
			Method:  http.MethodPost,
			Handler: CreatePost(service, now),
		},
		{
			Path:    "/v1/inquiries/reply",
			Method:  http.MethodPost,
			Handler: ReplyInquiry(service, now),
		},
		{
			Path:    "/v1/inquiries/follow-up",
			Method:  http.MethodPost,
			Handler: FollowUpInquiry(service, now),
		},
		{
			Path:    "/v1/contents",
			Method:  http.MethodGet,
			Handler: ListContents(service),
		},
	}
}

func Season(now func() time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/season",
			Method:  http.MethodGet,
			Handler: GetSeason(now),
		},
	}
}

func CronJobs(service DailyAutomation) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/daily",
			Method:  http.MethodPost,
			Handler: RunDailyAutomation(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}

package router

import (
	"lottoInsight/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetLottoRoutes(api *echo.Group, handler *rest.LottoHandler) {
	api.GET("/games", handler.Games)
	api.GET("/draws/summary", handler.DrawSummary)

	freq := api.Group("/frequencies")
	freq.GET("", handler.Frequency)
	freq.GET("/chart", handler.Chart)

	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend)
	reco.GET("/debug", handler.RecommendDebug)
}

func SetMetricsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

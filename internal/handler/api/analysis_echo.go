package api

import (
	"errors"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/usecase"
	xhttp "GoldPulse/pkg/http"
	xlogger "GoldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the dip-detection API over Echo.
type AnalysisHandler struct {
	logger *xlogger.Logger
	uc     *usecase.AnalysisUseCase
}

func NewAnalysisHandler(logger *xlogger.Logger, uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Health)

	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.GET("/gold-price", h.GoldPrice)
	g.GET("/market-indicators", h.MarketIndicators)
	g.GET("/analysis/full", h.FullAnalysis)
	g.GET("/analysis/:factor", h.FactorAnalysis)
	g.GET("/dip-detection", h.DipDetection)
	g.GET("/historical/gold-price", h.HistoricalGoldPrice)
}

func (h *AnalysisHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, &models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Message:   "gold dip detection service is running",
	})
}

func (h *AnalysisHandler) GoldPrice(c echo.Context) error {
	res, err := h.uc.GoldPrice(c.Request().Context())
	if err != nil {
		h.logger.Error("gold price usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("gold price unavailable").WithError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) MarketIndicators(c echo.Context) error {
	res, err := h.uc.MarketIndicators(c.Request().Context())
	if err != nil {
		h.logger.Error("market indicators usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) FullAnalysis(c echo.Context) error {
	res, err := h.uc.Full(c.Request().Context())
	if err != nil {
		h.logger.Error("full analysis usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) FactorAnalysis(c echo.Context) error {
	slug := c.Param("factor")
	res, err := h.uc.Factor(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownFactor) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no analysis factor %q", slug))
		}
		h.logger.Error("factor analysis usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) DipDetection(c echo.Context) error {
	res, err := h.uc.DipDetection(c.Request().Context())
	if err != nil {
		h.logger.Error("dip detection usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) HistoricalGoldPrice(c echo.Context) error {
	req := &models.HistoricalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.HistoricalGold(c.Request().Context(), req.Days)
	if err != nil {
		h.logger.Error("historical gold usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("historical gold price unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

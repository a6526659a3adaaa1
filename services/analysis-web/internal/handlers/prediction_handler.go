package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"go.uber.org/zap"
)

// PredictionHandler exposes the prediction client as a JSON API.
type PredictionHandler struct {
	logger    *zap.Logger
	predictor predictor.Predictor
}

func NewPredictionHandler(logger *zap.Logger, p predictor.Predictor) *PredictionHandler {
	return &PredictionHandler{logger: logger, predictor: p}
}

// RegisterRoutes registers prediction routes on the provided group.
func (h *PredictionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predictions", h.CreatePrediction)
	r.GET("/service-info", h.GetServiceInfo)
	r.GET("/model-info", h.GetModelInfo)
}

// CreatePrediction answers 200 for both result shapes; a failed prediction is
// returned as {"error":true,"message":...}.
func (h *PredictionHandler) CreatePrediction(c *gin.Context) {
	traceID, _ := utils.GetTraceID(c)

	var req views.TransactionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, traceID, pkg.NewAppError(pkg.ErrInvalidInputCode, "invalid request body", err))
		return
	}

	result := h.predictor.Predict(c.Request.Context(), traceID, req)
	c.JSON(http.StatusOK, result)
}

func (h *PredictionHandler) GetServiceInfo(c *gin.Context) {
	traceID, _ := utils.GetTraceID(c)
	doc, err := h.predictor.ServiceInfo(c.Request.Context())
	if err != nil {
		h.abort(c, traceID, pkg.NewAppError(pkg.ErrUpstreamCode, "", err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *PredictionHandler) GetModelInfo(c *gin.Context) {
	traceID, _ := utils.GetTraceID(c)
	doc, err := h.predictor.ModelInfo(c.Request.Context())
	if err != nil {
		h.abort(c, traceID, pkg.NewAppError(pkg.ErrUpstreamCode, "", err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *PredictionHandler) abort(c *gin.Context, traceID string, err error) {
	resp := pkg.ToErrorResponse(h.logger, traceID, err)
	c.AbortWithStatusJSON(resp.Status, resp)
}

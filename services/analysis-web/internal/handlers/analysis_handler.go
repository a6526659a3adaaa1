package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/pages"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"go.uber.org/zap"
)

// AnalysisHandler serves the transaction form and handles its submissions.
type AnalysisHandler struct {
	logger    *zap.Logger
	predictor predictor.Predictor
}

func NewAnalysisHandler(logger *zap.Logger, p predictor.Predictor) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, predictor: p}
}

func (h *AnalysisHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.ShowForm)
	r.POST("/", h.SubmitForm)
	r.POST("/analysis", h.SubmitFragment)
}

func (h *AnalysisHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, pages.PageTemplate, pages.NewPage(pages.TransactionForm{}, pages.HiddenResult()))
}

// SubmitForm renders the whole page with the results container replaced.
func (h *AnalysisHandler) SubmitForm(c *gin.Context) {
	form, result := h.analyze(c)
	c.HTML(http.StatusOK, pages.PageTemplate, pages.NewPage(form, result))
}

// SubmitFragment renders only #analysisResults for script driven pages.
func (h *AnalysisHandler) SubmitFragment(c *gin.Context) {
	_, result := h.analyze(c)
	c.HTML(http.StatusOK, pages.FragmentTemplate, result)
}

// analyze binds the submitted fields and waits for the prediction. The call
// is bound to the request context, so an abandoned submission cancels it.
func (h *AnalysisHandler) analyze(c *gin.Context) (pages.TransactionForm, pages.ResultView) {
	traceID, _ := utils.GetTraceID(c)

	var form pages.TransactionForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("invalid form submission", zap.String(pkg.TraceId, traceID), zap.Error(err))
		return form, pages.ErrorResult("invalid form submission")
	}

	result := h.predictor.Predict(c.Request.Context(), traceID, form.ToInput())
	return form, pages.NewResultView(result)
}

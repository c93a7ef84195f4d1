package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-quiz/internal/app"
)

// QuizHandler handles the quiz endpoints.
type QuizHandler struct {
	service *app.QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(service *app.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// Today handles GET /quotes/today.
// Returns today's quote and whether the calling device already acted on it.
// Without a device header locked is always false.
//
// @Summary Get today's quote
// @Tags quotes
// @Produce json
// @Param X-Device-Id header string false "Device ID"
// @Success 200 {object} dto.TodayResponse
// @Router /quotes/today [get]
func (h *QuizHandler) Today(c *gin.Context) {
	view, err := h.service.Today(c.Request.Context(), middleware.GetDeviceID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTodayResponse(view))
}

// GetQuote handles GET /quotes/:id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuizHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Submit handles POST /quotes/:id/submissions.
// A device may submit or skip a quote once per calendar day.
//
// @Summary Submit fills for a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param X-Device-Id header string true "Device ID"
// @Param id path string true "Quote ID"
// @Param body body dto.SubmitRequest true "Fills"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotes/{id}/submissions [post]
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), c.Param("id"), middleware.GetDeviceID(c), req.FillA, req.FillB)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: sub.ID})
}

// Skip handles POST /quotes/:id/skip.
//
// @Summary Skip today's quote
// @Tags quotes
// @Param X-Device-Id header string true "Device ID"
// @Param id path string true "Quote ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotes/{id}/skip [post]
func (h *QuizHandler) Skip(c *gin.Context) {
	if err := h.service.Skip(c.Request.Context(), c.Param("id"), middleware.GetDeviceID(c)); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Ranking handles GET /quotes/:id/ranking.
// Unknown quotes have an empty ranking.
//
// @Summary Rank a quote's submissions by likes
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.RankingResponse
// @Router /quotes/{id}/ranking [get]
func (h *QuizHandler) Ranking(c *gin.Context) {
	rows, err := h.service.Ranking(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRankingResponse(rows))
}

// ToggleLike handles POST /submissions/:sid/like.
//
// @Summary Like or un-like a submission
// @Tags submissions
// @Produce json
// @Param X-Device-Id header string true "Device ID"
// @Param sid path string true "Submission ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{sid}/like [post]
func (h *QuizHandler) ToggleLike(c *gin.Context) {
	likes, err := h.service.ToggleLike(c.Request.Context(), c.Param("sid"), middleware.GetDeviceID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Likes: likes})
}

// GetSubmission handles GET /submissions/:sid.
//
// @Summary Get a submission by ID
// @Tags submissions
// @Produce json
// @Param sid path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{sid} [get]
func (h *QuizHandler) GetSubmission(c *gin.Context) {
	sub, err := h.service.Submission(c.Request.Context(), c.Param("sid"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionResponse(sub))
}

// RegisterQuizRoutes registers the quiz routes on the given router group.
// deviceHeader names the header carrying the device id.
func (h *QuizHandler) RegisterQuizRoutes(rg *gin.RouterGroup, deviceHeader string) {
	requireDevice := middleware.RequireDevice(deviceHeader)

	quotes := rg.Group("/quotes")
	quotes.GET("/today", middleware.OptionalDevice(deviceHeader), h.Today)
	quotes.GET("/:id", h.GetQuote)
	quotes.GET("/:id/ranking", h.Ranking)
	quotes.POST("/:id/submissions", requireDevice, h.Submit)
	quotes.POST("/:id/skip", requireDevice, h.Skip)

	submissions := rg.Group("/submissions")
	submissions.GET("/:sid", h.GetSubmission)
	submissions.POST("/:sid/like", requireDevice, h.ToggleLike)
}

package handlers

import (
	"net/http"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"
	"github.com/Stephan2025u/FMS-NEW/internal/scoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ResultsHandler struct {
	log     *zap.Logger
	catalog *models.Catalog
}

func NewResultsHandler(log *zap.Logger, catalog *models.Catalog) *ResultsHandler {
	return &ResultsHandler{log: log, catalog: catalog}
}

// resultResponse is a persisted record plus its display-time reading. The
// interpretation is never stored; the engine recomputes it on every read.
type resultResponse struct {
	*models.TestResult
	PainIndicatorCount int                    `json:"pain_indicator_count"`
	AveragePerExercise float64                `json:"average_per_exercise"`
	Interpretation     scoring.Interpretation `json:"interpretation"`
}

func newResultResponse(record *models.TestResult) resultResponse {
	scores := record.ScoreData()
	return resultResponse{
		TestResult:         record,
		PainIndicatorCount: scoring.PainIndicatorCount(scores),
		AveragePerExercise: scoring.AveragePerExercise(scores),
		Interpretation:     scoring.Interpret(record.TotalScore),
	}
}

type resultCreateRequest struct {
	ClientID      string          `json:"client_id"`
	Scores        models.ScoreMap `json:"scores"`
	AssessorNotes *string         `json:"assessor_notes"`
}

// Create persists a finished score map directly, for callers that run the
// flow themselves. The same validation and rollup path applies as for
// session submission.
func (h *ResultsHandler) Create(c *gin.Context) {
	var req resultCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "client_id and scores are required"})
		return
	}

	record, err := repository.CreateTestResult(c.Request.Context(), h.catalog, req.ClientID, req.Scores, req.AssessorNotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("Created test result", zap.String("recordID", record.ID), zap.String("clientID", req.ClientID))
	c.JSON(http.StatusOK, newResultResponse(record))
}

func (h *ResultsHandler) Get(c *gin.Context) {
	record, err := repository.GetTestResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newResultResponse(record))
}

// ListForClient returns a client's records, most recent first.
func (h *ResultsHandler) ListForClient(c *gin.Context) {
	records, err := repository.ListTestResultsForClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	responses := make([]resultResponse, len(records))
	for i := range records {
		responses[i] = newResultResponse(&records[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ResultsHandler) Delete(c *gin.Context) {
	if err := repository.DeleteTestResult(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info("Deleted test result", zap.String("recordID", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Test result deleted successfully"})
}

// Progress renders a client's total scores over time as a line chart.
func (h *ResultsHandler) Progress(c *gin.Context) {
	clientID := c.Param("id")
	client, err := repository.GetClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	points, err := repository.GetScoreTimeline(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "FMS Total Score Over Time",
			Subtitle: client.Name,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	items := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}
	line.AddSeries("Total Score", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render progress chart", zap.Error(err))
	}
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"
	"github.com/Stephan2025u/FMS-NEW/internal/scoring"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionKey is where the in-progress assessment session id lives in the
// cookie session.
const sessionKey = "assessmentID"

type AssessmentHandler struct {
	log     *zap.Logger
	catalog *models.Catalog
	store   *repository.SessionStore
}

func NewAssessmentHandler(log *zap.Logger, catalog *models.Catalog, store *repository.SessionStore) *AssessmentHandler {
	return &AssessmentHandler{log: log, catalog: catalog, store: store}
}

// sessionState is the flow payload returned by every navigation endpoint:
// where the assessor is, the exercise at that position, its entry so far,
// and the live progress numbers.
type sessionState struct {
	SessionID            string          `json:"session_id"`
	ClientID             string          `json:"client_id"`
	CurrentExerciseIndex int             `json:"current_exercise_index"`
	TotalExercises       int             `json:"total_exercises"`
	Exercise             models.Exercise `json:"exercise"`
	Entry                *models.Entry   `json:"entry"`
	CurrentTotal         int             `json:"current_total"`
	IsComplete           bool            `json:"is_complete"`
}

func (h *AssessmentHandler) state(session *models.Session) sessionState {
	exercise, _ := h.catalog.Get(session.CurrentExerciseID())
	return sessionState{
		SessionID:            session.ID,
		ClientID:             session.ClientID,
		CurrentExerciseIndex: session.CurrentExerciseIndex,
		TotalExercises:       len(session.Order),
		Exercise:             exercise,
		Entry:                session.Entries[session.CurrentExerciseID()],
		CurrentTotal:         session.CurrentTotal(),
		IsComplete:           session.IsComplete(),
	}
}

// current resolves the caller's in-progress session from the cookie session.
func (h *AssessmentHandler) current(c *gin.Context) (*models.Session, bool) {
	cookie := sessions.Default(c)
	id, ok := cookie.Get(sessionKey).(string)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "no assessment in progress"})
		return nil, false
	}
	session, err := h.store.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return session, true
}

func (h *AssessmentHandler) clearCookie(c *gin.Context) {
	cookie := sessions.Default(c)
	cookie.Delete(sessionKey)
	if err := cookie.Save(); err != nil {
		h.log.Error("Failed to clear session cookie", zap.Error(err))
	}
}

type startRequest struct {
	ClientID string `json:"client_id"`
}

// Start begins a new assessment for a client: a session seeded with the
// seven exercises, all unscored, positioned at the first.
func (h *AssessmentHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "client_id is required"})
		return
	}

	// The session must belong to a real client.
	if _, err := repository.GetClient(c.Request.Context(), req.ClientID); err != nil {
		respondError(c, h.log, err)
		return
	}

	session := h.store.Start(req.ClientID, h.catalog)

	cookie := sessions.Default(c)
	cookie.Set(sessionKey, session.ID)
	if err := cookie.Save(); err != nil {
		h.log.Error("Failed to save session cookie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	h.log.Info("Started assessment", zap.String("sessionID", session.ID), zap.String("clientID", req.ClientID))
	c.JSON(http.StatusOK, h.state(session))
}

// Current returns the flow state without mutating anything.
func (h *AssessmentHandler) Current(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.state(session))
}

type scoreRequest struct {
	ExerciseID string  `json:"exercise_id"`
	Score      *int    `json:"score"`
	Pain       *bool   `json:"pain"`
	Notes      *string `json:"notes"`
}

// Score merges a partial entry update. The target defaults to the current
// exercise but any exercise id may be addressed; navigation and scoring are
// independent.
func (h *AssessmentHandler) Score(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	exerciseID := req.ExerciseID
	if exerciseID == "" {
		exerciseID = session.CurrentExerciseID()
	}

	update := models.EntryUpdate{Score: req.Score, Pain: req.Pain, Notes: req.Notes}
	if err := session.UpdateEntry(exerciseID, update); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.state(session))
}

// Next advances to the next exercise. Blocked while the current one is
// unscored.
func (h *AssessmentHandler) Next(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}
	if err := session.Advance(); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.state(session))
}

// Prev moves back one exercise. Backward navigation is always allowed.
func (h *AssessmentHandler) Prev(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}
	if err := session.Retreat(); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.state(session))
}

type submitRequest struct {
	AssessorNotes *string `json:"assessor_notes"`
}

// Submit finalizes the session into an immutable test result. The session
// stays alive and resumable when finalization fails; on success it is
// discarded.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}

	// Notes are optional, so an empty body is fine.
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	notes := ""
	if req.AssessorNotes != nil {
		notes = *req.AssessorNotes
	}

	// Finalize gates on completeness before the store is ever involved.
	scores, err := session.Finalize(notes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	record, err := repository.CreateTestResult(c.Request.Context(), h.catalog, session.ClientID, scores, req.AssessorNotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.store.Remove(session.ID)
	h.clearCookie(c)

	h.log.Info("Assessment submitted",
		zap.String("sessionID", session.ID),
		zap.String("recordID", record.ID),
		zap.Int("totalScore", record.TotalScore),
	)
	c.JSON(http.StatusOK, resultResponse{
		TestResult:         record,
		PainIndicatorCount: scoring.PainIndicatorCount(scores),
		AveragePerExercise: scoring.AveragePerExercise(scores),
		Interpretation:     scoring.Interpret(record.TotalScore),
	})
}

// Abandon discards the in-progress session without persisting anything.
func (h *AssessmentHandler) Abandon(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}
	h.store.Remove(session.ID)
	h.clearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Assessment abandoned"})
}

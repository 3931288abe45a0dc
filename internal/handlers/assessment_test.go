package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newFlowRouter wires the assessment handler behind the same cookie-session
// middleware the real router uses. A test-only /begin route seeds a session
// straight into the store, since Start requires a persisted client.
func newFlowRouter(t *testing.T) (*gin.Engine, *repository.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := models.LoadCatalog()
	require.NoError(t, err)
	store := repository.NewSessionStore(zap.NewNop(), time.Hour)
	h := NewAssessmentHandler(zap.NewNop(), catalog, store)

	r := gin.New()
	r.Use(sessions.Sessions("fms_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/begin", func(c *gin.Context) {
		session := store.Start("client-1", catalog)
		ck := sessions.Default(c)
		ck.Set(sessionKey, session.ID)
		require.NoError(t, ck.Save())
		c.JSON(http.StatusOK, gin.H{"session_id": session.ID})
	})
	r.GET("/assessment/current", h.Current)
	r.POST("/assessment/score", h.Score)
	r.POST("/assessment/next", h.Next)
	r.POST("/assessment/prev", h.Prev)
	r.POST("/assessment/submit", h.Submit)
	r.POST("/assessment/abandon", h.Abandon)
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// beginAssessment seeds a session and returns the flow cookies plus the
// session id for store-side assertions.
func beginAssessment(t *testing.T, r *gin.Engine) ([]*http.Cookie, string) {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/begin", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies, resp.SessionID
}

func TestAssessment_NoSessionReturns404(t *testing.T) {
	r, _ := newFlowRouter(t)

	w := doRequest(t, r, http.MethodGet, "/assessment/current", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestAssessment_SubmitIncompleteReturns422WithoutTouchingStore(t *testing.T) {
	r, store := newFlowRouter(t)
	cookies, id := beginAssessment(t, r)

	w := doRequest(t, r, http.MethodPost, "/assessment/submit", "", cookies)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "detail")

	// The session survives the rejected submit and stays resumable.
	session, err := store.Get(id)
	require.NoError(t, err)
	assert.False(t, session.IsComplete())

	w = doRequest(t, r, http.MethodGet, "/assessment/current", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssessment_NextUnscoredReturns409(t *testing.T) {
	r, _ := newFlowRouter(t)
	cookies, _ := beginAssessment(t, r)

	w := doRequest(t, r, http.MethodPost, "/assessment/next", "", cookies)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, r, http.MethodPost, "/assessment/score", `{"score": 2}`, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPost, "/assessment/next", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	var state struct {
		CurrentExerciseIndex int `json:"current_exercise_index"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 1, state.CurrentExerciseIndex)
}

func TestAssessment_PrevAtFirstReturns409(t *testing.T) {
	r, _ := newFlowRouter(t)
	cookies, _ := beginAssessment(t, r)

	w := doRequest(t, r, http.MethodPost, "/assessment/prev", "", cookies)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssessment_ScoreValidationStatus(t *testing.T) {
	r, store := newFlowRouter(t)
	cookies, id := beginAssessment(t, r)

	w := doRequest(t, r, http.MethodPost, "/assessment/score", `{"score": 9}`, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/assessment/score", `{"exercise_id": "backflip", "score": 2}`, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Neither rejected request changed the session.
	session, err := store.Get(id)
	require.NoError(t, err)
	assert.False(t, session.Entries["deepSquat"].Scored())
}

func TestAssessment_AbandonDiscardsSession(t *testing.T) {
	r, store := newFlowRouter(t)
	cookies, id := beginAssessment(t, r)

	w := doRequest(t, r, http.MethodPost, "/assessment/abandon", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, models.ErrNotFound)

	w = doRequest(t, r, http.MethodGet, "/assessment/current", "", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

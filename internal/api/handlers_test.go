package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disease-risk-server/internal/cache"
	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/engine"
	"github.com/disease-risk-server/internal/history"
	"github.com/disease-risk-server/internal/knowledge"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	base, err := knowledge.NewBase()
	require.NoError(t, err)

	store, err := history.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	predCache, err := cache.NewPredictionCache(64)
	require.NoError(t, err)

	cfg := &domain.Config{
		Server:    domain.ServerConfig{Host: "127.0.0.1", Port: 0},
		RateLimit: domain.RateLimitConfig{Enabled: false},
		Logging:   domain.LoggingConfig{Level: "error"},
	}

	return NewServer(cfg, Deps{
		Base:      base,
		Scorer:    engine.NewScorer(base, logger),
		Analyzer:  engine.NewMissingAnalyzer(base),
		Store:     store,
		PredCache: predCache,
		DashCache: nil,
	}, logger)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Greater(t, body["diseases"].(float64), 90.0)
}

func TestPredictEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/predict", map[string]interface{}{
		"disease":  "Diabetes",
		"symptoms": []string{"increased_thirst", "frequent_urination"},
		"age":      60,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	pred := body["prediction"].(map[string]interface{})
	assert.Equal(t, "diabetes", pred["disease"])
	assert.InDelta(t, 2, pred["symptoms_matched"].(float64), 0)

	bayes := body["bayesian"].(map[string]interface{})
	posterior := bayes["posterior"].(float64)
	assert.GreaterOrEqual(t, posterior, 0.0)
	assert.LessOrEqual(t, posterior, 1.0)

	risk := body["risk"].(map[string]interface{})
	assert.Contains(t, []string{"Low", "Moderate", "High", "Critical"}, risk["level"])

	assert.NotEmpty(t, body["record_id"], "prediction should be persisted")
	assert.Equal(t, false, body["cached"])
}

func TestPredictPersistsHistory(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/predict", map[string]interface{}{
		"disease":  "asthma",
		"symptoms": []string{"wheezing"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	hw := doJSON(t, s, http.MethodGet, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, hw.Code)

	body := decode(t, hw)
	assert.Equal(t, 1.0, body["total"])
	records := body["records"].([]interface{})
	require.Len(t, records, 1)
	assert.Equal(t, "asthma", records[0].(map[string]interface{})["disease"])
}

func TestPredictCacheHitOnRepeat(t *testing.T) {
	s := newTestServer(t)

	req := map[string]interface{}{
		"disease":  "diabetes",
		"symptoms": []string{"fatigue"},
	}

	first := decode(t, doJSON(t, s, http.MethodPost, "/api/v1/predict", req))
	assert.Equal(t, false, first["cached"])

	second := decode(t, doJSON(t, s, http.MethodPost, "/api/v1/predict", req))
	assert.Equal(t, true, second["cached"])
}

func TestPredictUnknownDisease(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/predict", map[string]interface{}{
		"disease": "dragon pox",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, domain.ErrCodeNotFound, errObj["code"])
}

func TestPredictMissingBody(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/predict", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictAllEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/predict/all", map[string]interface{}{
		"symptoms": []string{"fatigue", "fever", "chest_pain"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	preds := body["predictions"].([]interface{})
	require.NotEmpty(t, preds)
	assert.Equal(t, float64(len(preds)), body["count"])

	// Ranked by calibrated probability descending.
	prev := 1.1
	for _, p := range preds {
		cur := p.(map[string]interface{})["calibrated_probability"].(float64)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestListDiseasesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/diseases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	diseases := body["diseases"].([]interface{})
	assert.Equal(t, "diabetes", diseases[0])
	assert.Equal(t, float64(len(diseases)), body["count"])
}

func TestDiseaseSymptomsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/diseases/Heart%20Disease/symptoms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	symptoms := body["symptoms"].([]interface{})
	require.NotEmpty(t, symptoms)
	first := symptoms[0].(map[string]interface{})
	assert.NotEmpty(t, first["key"])
	assert.NotEmpty(t, first["name"])

	nf := doJSON(t, s, http.MethodGet, "/api/v1/diseases/unknown/symptoms", nil)
	assert.Equal(t, http.StatusNotFound, nf.Code)
}

func TestDiseaseSymptomsImportanceSort(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/diseases/diabetes/symptoms?sort=importance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	symptoms := decode(t, w)["symptoms"].([]interface{})
	require.NotEmpty(t, symptoms)

	prev := 1.1
	for _, raw := range symptoms {
		weight := raw.(map[string]interface{})["weight"].(float64)
		assert.LessOrEqual(t, weight, prev)
		prev = weight
	}
	top := symptoms[0].(map[string]interface{})
	assert.Equal(t, "frequent_urination", top["key"])

	bad := doJSON(t, s, http.MethodGet, "/api/v1/diseases/diabetes/symptoms?sort=alphabetical", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestMissingSymptomsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/diseases/diabetes/missing-symptoms", map[string]interface{}{
		"symptoms": []string{"frequent_urination"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	missing := body["missing_symptoms"].([]interface{})
	require.NotEmpty(t, missing)
	for _, m := range missing {
		entry := m.(map[string]interface{})
		assert.GreaterOrEqual(t, entry["weight"].(float64), 0.75)
		assert.NotEqual(t, "frequent_urination", entry["key"])
	}

	// Unknown disease: lenient empty list, not 404.
	unknown := doJSON(t, s, http.MethodPost, "/api/v1/diseases/unknown/missing-symptoms", map[string]interface{}{})
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Empty(t, decode(t, unknown)["missing_symptoms"])
}

func TestPosteriorEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/bayes/posterior", map[string]interface{}{
		"prior":      0.3,
		"likelihood": 0.8,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.InDelta(t, 0.24/0.275, body["posterior"].(float64), 1e-9)
	assert.InDelta(t, 0.05, body["false_positive_rate"].(float64), 1e-9)
}

func TestTestPosteriorEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/bayes/test", map[string]interface{}{
		"prior":       0.1,
		"sensitivity": 0.9,
		"specificity": 0.95,
		"test_result": "positive",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.InDelta(t, 0.09/0.135, body["posterior"].(float64), 1e-9)
	assert.Equal(t, "positive", body["test_result"])
}

func TestTestPosteriorStrictValidation(t *testing.T) {
	s := newTestServer(t)

	// Lenient clamps the out-of-range prior.
	lenient := doJSON(t, s, http.MethodPost, "/api/v1/bayes/test", map[string]interface{}{
		"prior":       1.5,
		"sensitivity": 0.9,
		"specificity": 0.95,
		"test_result": "positive",
	})
	assert.Equal(t, http.StatusOK, lenient.Code)

	// Strict rejects it.
	strict := doJSON(t, s, http.MethodPost, "/api/v1/bayes/test", map[string]interface{}{
		"prior":       1.5,
		"sensitivity": 0.9,
		"specificity": 0.95,
		"test_result": "positive",
		"strict":      true,
	})
	require.Equal(t, http.StatusBadRequest, strict.Code)
	errObj := decode(t, strict)["error"].(map[string]interface{})
	assert.Equal(t, domain.ErrCodeValidation, errObj["code"])
}

func TestTestPosteriorInvalidResult(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/bayes/test", map[string]interface{}{
		"prior":       0.1,
		"sensitivity": 0.9,
		"specificity": 0.95,
		"test_result": "inconclusive",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRiskLevelEndpoint(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		level string
	}{
		{"29.99", "Low"},
		{"30", "Moderate"},
		{"60", "High"},
		{"85", "Critical"},
	}
	for _, tt := range tests {
		w := doJSON(t, s, http.MethodGet, "/api/v1/risk-level?percentage="+tt.query, nil)
		require.Equal(t, http.StatusOK, w.Code, tt.query)
		assert.Equal(t, tt.level, decode(t, w)["level"], tt.query)
	}

	bad := doJSON(t, s, http.MethodGet, "/api/v1/risk-level?percentage=abc", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	outOfRange := doJSON(t, s, http.MethodGet, "/api/v1/risk-level?percentage=101", nil)
	assert.Equal(t, http.StatusBadRequest, outOfRange.Code)
}

func TestHistoryPaginationValidation(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/api/v1/history?limit=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/api/v1/history?limit=999", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/api/v1/history?offset=-1", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, s, http.MethodGet, "/api/v1/history?limit=5&offset=0", nil).Code)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	s := newTestServer(t)

	// Seed a few predictions through the public API.
	for _, disease := range []string{"diabetes", "asthma", "gout"} {
		w := doJSON(t, s, http.MethodPost, "/api/v1/predict", map[string]interface{}{
			"disease":  disease,
			"symptoms": []string{"fatigue"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, s, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, 3.0, body["total_patients"])

	buckets := body["distribution"].([]interface{})
	require.Len(t, buckets, 4)

	sum := 0.0
	for _, b := range buckets {
		sum += b.(map[string]interface{})["percentage"].(float64)
	}
	assert.Equal(t, 100.0, sum)
}

func TestDashboardActivityUnavailableOnSQLite(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/dashboard/activity", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestDashboardStatsEmpty(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, 0.0, body["total_patients"])
	for _, b := range body["distribution"].([]interface{}) {
		assert.Equal(t, 0.0, b.(map[string]interface{})["percentage"])
	}
}

package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/disease-risk-server/internal/cache"
	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/engine"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// predictRequest is the request body for single-disease prediction.
type predictRequest struct {
	Disease  string   `json:"disease" binding:"required"`
	Symptoms []string `json:"symptoms"`
	Age      *int     `json:"age"`
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
}

// predictAllRequest is the request body for ranked differential prediction.
type predictAllRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Age      *int     `json:"age"`
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
}

type posteriorRequest struct {
	Prior             float64  `json:"prior"`
	Likelihood        float64  `json:"likelihood"`
	FalsePositiveRate *float64 `json:"false_positive_rate"`
}

type testPosteriorRequest struct {
	Prior       float64 `json:"prior"`
	Sensitivity float64 `json:"sensitivity"`
	Specificity float64 `json:"specificity"`
	TestResult  string  `json:"test_result" binding:"required"`
	Strict      bool    `json:"strict"`
}

type missingRequest struct {
	Symptoms []string `json:"symptoms"`
}

// respondError maps engine error kinds onto HTTP statuses with a uniform
// error envelope.
func (s *Server) respondError(c *gin.Context, err error) {
	var (
		status = http.StatusInternalServerError
		code   = domain.ErrCodeInternal
	)

	var ve *domain.ValidationError
	var de *domain.DegenerateError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, domain.ErrCodeNotFound
	case errors.As(err, &ve):
		status, code = http.StatusBadRequest, domain.ErrCodeValidation
	case errors.As(err, &de):
		status, code = http.StatusUnprocessableEntity, domain.ErrCodeDegenerate
	}

	if status == http.StatusInternalServerError {
		s.logger.WithFields(logrus.Fields{
			"correlation_id": c.GetString("correlation_id"),
			"path":           c.Request.URL.Path,
		}).WithError(err).Error("Request failed")
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
		"correlation_id": c.GetString("correlation_id"),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    domain.ErrCodeValidation,
			"message": err.Error(),
		},
		"correlation_id": c.GetString("correlation_id"),
	})
}

// handlePredict scores one disease, refines it to a posterior, attaches risk
// and missing-symptom hints, and persists a reduced record of the result.
func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	demo := domain.Demographics{Age: req.Age, HeightCM: req.HeightCM, WeightKG: req.WeightKG}

	key := cache.Key(req.Disease, req.Symptoms, demo)
	result, hit := s.predCache.Get(key)
	if !hit {
		var err error
		result, err = s.scorer.Score(req.Disease, req.Symptoms, demo)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.predCache.Put(key, result)
	}

	bayes := engine.PosteriorFromPriorLikelihood(result.Prior, result.Likelihood, engine.DefaultFalsePositiveRate)
	risk := engine.RiskFromPercentage(bayes.Posterior * 100)
	missing := s.analyzer.Missing(result.Disease, req.Symptoms)

	record := &domain.PredictionRecord{
		Disease:        result.Disease,
		Symptoms:       req.Symptoms,
		RawProbability: result.RawProbability,
		Posterior:      bayes.Posterior,
		Confidence:     result.Confidence,
		RiskLevel:      risk.Key,
		Age:            req.Age,
	}
	if err := s.store.Save(c.Request.Context(), record); err != nil {
		// Persistence is a side effect; the prediction itself already
		// succeeded, so log and keep serving.
		s.logger.WithError(err).Error("Failed to persist prediction record")
	} else {
		s.dashCache.Invalidate(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction":       result,
		"bayesian":         bayes,
		"risk":             risk,
		"missing_symptoms": missing,
		"record_id":        record.ID,
		"cached":           hit,
	})
}

// handlePredictAll ranks all diseases against the symptom set.
func (s *Server) handlePredictAll(c *gin.Context) {
	var req predictAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	demo := domain.Demographics{Age: req.Age, HeightCM: req.HeightCM, WeightKG: req.WeightKG}
	results := s.scorer.PredictAll(req.Symptoms, demo)

	c.JSON(http.StatusOK, gin.H{
		"predictions": results,
		"count":       len(results),
	})
}

// handleListDiseases returns all disease keys in canonical order.
func (s *Server) handleListDiseases(c *gin.Context) {
	keys := s.base.Diseases()
	c.JSON(http.StatusOK, gin.H{
		"diseases": keys,
		"count":    len(keys),
	})
}

// handleDiseaseSymptoms returns a disease's symptoms with display names, in
// profile order by default or by descending weight with ?sort=importance.
func (s *Server) handleDiseaseSymptoms(c *gin.Context) {
	symptoms, names, err := s.base.SymptomsFor(c.Param("name"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	type entry struct {
		Key    string  `json:"key"`
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	}
	out := make([]entry, len(symptoms))
	for i, sw := range symptoms {
		out[i] = entry{Key: sw.Key, Name: names[sw.Key], Weight: sw.Weight}
	}

	switch c.Query("sort") {
	case "", "profile":
	case "importance":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Weight > out[j].Weight
		})
	default:
		badRequest(c, domain.NewValidationError("sort", "must be profile or importance", c.Query("sort")))
		return
	}

	c.JSON(http.StatusOK, gin.H{"symptoms": out})
}

// handleMissingSymptoms returns high-weight unreported symptoms for a
// disease. Unknown diseases yield an empty list by design.
func (s *Server) handleMissingSymptoms(c *gin.Context) {
	var req missingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	missing := s.analyzer.Missing(c.Param("name"), req.Symptoms)
	c.JSON(http.StatusOK, gin.H{"missing_symptoms": missing})
}

// handlePosterior computes the prior/likelihood posterior.
func (s *Server) handlePosterior(c *gin.Context) {
	var req posteriorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	fpr := engine.DefaultFalsePositiveRate
	if req.FalsePositiveRate != nil {
		fpr = *req.FalsePositiveRate
	}

	c.JSON(http.StatusOK, engine.PosteriorFromPriorLikelihood(req.Prior, req.Likelihood, fpr))
}

// handleTestPosterior computes the sensitivity/specificity posterior. The
// strict flag selects the validating variant used by the standalone
// calculator form.
func (s *Server) handleTestPosterior(c *gin.Context) {
	var req testPosteriorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	compute := engine.PosteriorFromTest
	if req.Strict {
		compute = engine.PosteriorFromTestStrict
	}

	res, err := compute(req.Prior, req.Sensitivity, req.Specificity, domain.TestResult(req.TestResult))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// handleRiskLevel maps a percentage onto the risk taxonomy.
func (s *Server) handleRiskLevel(c *gin.Context) {
	p, err := strconv.ParseFloat(c.Query("percentage"), 64)
	if err != nil {
		badRequest(c, domain.NewValidationError("percentage", "must be a number", c.Query("percentage")))
		return
	}
	if p < 0 || p > 100 {
		badRequest(c, domain.NewValidationError("percentage", "must be between 0 and 100", p))
		return
	}

	c.JSON(http.StatusOK, engine.RiskFromPercentage(p))
}

// handleHistory lists persisted prediction records, newest first.
func (s *Server) handleHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit < 1 || limit > maxHistoryLimit {
		badRequest(c, domain.NewValidationError("limit", "must be between 1 and 200", c.Query("limit")))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, domain.NewValidationError("offset", "must be a non-negative integer", c.Query("offset")))
		return
	}

	records, err := s.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.respondError(c, err)
		return
	}
	total, err := s.store.Count(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	if records == nil {
		records = []domain.PredictionRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   total,
	})
}

// handleDashboardStats returns the aggregate risk distribution, served from
// the cache when fresh.
func (s *Server) handleDashboardStats(c *gin.Context) {
	if dist, ok := s.dashCache.GetDistribution(c.Request.Context()); ok {
		c.JSON(http.StatusOK, dist)
		return
	}

	dist, err := s.buildDistribution(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.dashCache.SetDistribution(c.Request.Context(), dist)
	c.JSON(http.StatusOK, dist)
}

// handleDashboardActivity returns the per-disease breakdown and recent
// prediction volume. Backed by aggregate SQL over the shared postgres
// history, so it is only available on that backend.
func (s *Server) handleDashboardActivity(c *gin.Context) {
	if s.dashboard == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": gin.H{
				"code":    domain.ErrCodeValidation,
				"message": "activity stats require the postgres history backend",
			},
			"correlation_id": c.GetString("correlation_id"),
		})
		return
	}

	top, err := s.dashboard.TopDiseases(c.Request.Context(), 10)
	if err != nil {
		s.respondError(c, err)
		return
	}
	recent, err := s.dashboard.RecentActivity(c.Request.Context(), 24*time.Hour)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"top_diseases":  top,
		"last_24_hours": recent,
	})
}

// buildDistribution assembles the reconciled risk distribution from the
// store's raw counts.
func (s *Server) buildDistribution(c *gin.Context) (*domain.RiskDistribution, error) {
	counts, err := s.store.RiskLevelCounts(c.Request.Context())
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	percentages := engine.Reconcile(counts)

	dist := &domain.RiskDistribution{
		TotalPatients: total,
		GeneratedAt:   time.Now().UTC(),
	}
	for i, level := range domain.RiskLevels {
		dist.Buckets[i] = domain.RiskBucket{
			Level:      level,
			Count:      counts[i],
			Percentage: percentages[i],
		}
	}
	return dist, nil
}

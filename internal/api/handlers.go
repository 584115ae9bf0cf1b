package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
	"emis-workers/internal/emis/intake"
	"emis-workers/internal/emis/report"
	"emis-workers/internal/emis/scoring"
	"emis-workers/internal/emis/specs"

	"github.com/go-chi/chi/v5"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{Error: &apiError{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

// Health

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	failed := make(map[string]string)
	for name, check := range s.checks {
		if err := check(r.Context()); err != nil {
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		s.logger.Warn("readiness check failed", map[string]interface{}{"failed": failed})
		s.respondError(w, http.StatusServiceUnavailable, "not_ready", fmt.Sprintf("%d dependencies unavailable", len(failed)))
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Catalog

type sectionView struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Slug      string             `json:"slug"`
	MaxScore  int                `json:"maxScore"`
	Questions []catalog.Question `json:"questions"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	sections := make([]sectionView, 0, len(s.catalog.Sections()))
	for _, sec := range s.catalog.Sections() {
		sections = append(sections, sectionView{
			ID:        string(sec),
			Title:     string(sec),
			Slug:      sec.Slug(),
			MaxScore:  s.catalog.SectionMaxScore(sec),
			Questions: s.catalog.QuestionsIn(sec),
		})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sections": sections,
		"total":    s.catalog.Len(),
		"maxScore": s.catalog.MaxScore(),
	})
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := s.catalog.Question(chi.URLParam(r, "id"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "not_found", "question not found")
		return
	}
	s.respondJSON(w, http.StatusOK, q)
}

// Static content

func (s *Server) handleFacilityTypes(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"facilityTypes": intake.FacilityTypes,
		"choices": []map[string]string{
			{"id": string(intake.WithEMIS), "label": intake.WithEMIS.Label()},
			{"id": string(intake.WithoutEMIS), "label": intake.WithoutEMIS.Label()},
		},
	})
}

func (s *Server) handleObjectives(w http.ResponseWriter, r *http.Request) {
	objectives := intake.DefaultObjectives()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"objectives": objectives,
		"total":      len(objectives),
	})
}

type tabView struct {
	Number int           `json:"number"`
	Key    string        `json:"key"`
	Name   string        `json:"name"`
	Topics []specs.Topic `json:"topics"`
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	tabs := make([]tabView, 0, specs.TabCount)
	for _, t := range specs.Tabs() {
		tabs = append(tabs, tabView{Number: int(t), Key: t.Key(), Name: t.Name(), Topics: specs.TopicsIn(t)})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"tabs":  tabs,
		"total": len(specs.Topics()),
	})
}

// Results

type previewRequest struct {
	Answers map[string]assessment.Answer `json:"answers"`
}

type previewResponse struct {
	Results           *scoring.Results             `json:"results"`
	Chart             report.RadarChart            `json:"chart"`
	Summary           string                       `json:"summary"`
	Recommendations   []string                     `json:"recommendations"`
	Complete          bool                         `json:"complete"`
	CompletionPercent int                          `json:"completionPercent"`
	SectionProgress   []assessment.SectionProgress `json:"sectionProgress"`
}

func (s *Server) decodeAnswers(w http.ResponseWriter, r *http.Request) (*assessment.Store, bool) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return nil, false
	}
	for id, a := range req.Answers {
		if a.Score < 0 {
			s.respondError(w, http.StatusBadRequest, "invalid_answer", fmt.Sprintf("answer %s has a negative score", id))
			return nil, false
		}
	}
	return assessment.FromAnswers(s.catalog, req.Answers), true
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	store, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}
	results := scoring.FromStore(store)
	s.respondJSON(w, http.StatusOK, previewResponse{
		Results:           results,
		Chart:             report.Chart(results),
		Summary:           scoring.Summary(results.OverallPercentage),
		Recommendations:   results.RecommendationTexts(),
		Complete:          store.Complete(),
		CompletionPercent: store.CompletionPercent(),
		SectionProgress:   store.SectionProgress(),
	})
}

// handleResultsDocument returns the results document as a Word download.
func (s *Server) handleResultsDocument(w http.ResponseWriter, r *http.Request) {
	store, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}
	doc, err := report.RenderResults(scoring.FromStore(store), report.ResultsOptions{
		Organization: r.URL.Query().Get("organization"),
	})
	if err != nil {
		s.logger.Error("results document failed", map[string]interface{}{"error": err.Error()})
		s.respondError(w, http.StatusInternalServerError, "render_failed", "report could not be rendered")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc.HTML)); err != nil {
		s.logger.Warn("results document write failed", map[string]interface{}{"error": err.Error()})
	}
}

package evaluationhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"luiza/internal/domain/auth"
	"luiza/internal/domain/evaluation"
	"luiza/internal/transport/http/middleware"
)

const testSecret = "evaluation-handler-test-secret"

type fakeStore struct {
	experience []evaluation.ExperienceEvaluation
}

func (f *fakeStore) CreateExperience(_ context.Context, eval evaluation.ExperienceEvaluation) (string, error) {
	f.experience = append(f.experience, eval)
	return "exp-1", nil
}

func (f *fakeStore) GetExperience(context.Context, string) (evaluation.ExperienceEvaluation, error) {
	return evaluation.ExperienceEvaluation{}, evaluation.ErrEvaluationNotFound
}

func (f *fakeStore) ListExperience(context.Context, string) ([]evaluation.ExperienceEvaluation, error) {
	return nil, nil
}

func (f *fakeStore) CreateQuarterly(context.Context, evaluation.QuarterlyEvaluation) (string, error) {
	return "qtr-1", nil
}

func (f *fakeStore) ListQuarterly(context.Context, string) ([]evaluation.QuarterlyEvaluation, error) {
	return nil, nil
}

func (f *fakeStore) CreateSupervisor(context.Context, evaluation.SupervisorEvaluation) (string, error) {
	return "sup-1", nil
}

func (f *fakeStore) ListSupervisor(context.Context, string) ([]evaluation.SupervisorEvaluation, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) (chi.Router, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Auth(testSecret))
	NewHandler(evaluation.NewService(store)).RegisterRoutes(router)
	return router, store
}

func evaluatorToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID: "user-1",
		Name:   "Supervisor",
		Role:   auth.RoleSupervisor,
	}, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func validExperienceAnswers() map[string]float64 {
	answers := make(map[string]float64, len(evaluation.ExperienceQuestionKeys))
	for _, key := range evaluation.ExperienceQuestionKeys {
		answers[key] = 8.0
	}
	return answers
}

func postExperience(t *testing.T, router chi.Router, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/evaluations/experience", bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer "+evaluatorToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateExperienceRejectsMalformedDate(t *testing.T) {
	router, store := newTestRouter(t)

	rec := postExperience(t, router, map[string]any{
		"employeeId":     "emp-1",
		"period":         evaluation.Period45Days,
		"evaluationDate": "31/12/2023",
		"answers":        validExperienceAnswers(),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}

	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", envelope.Error)
	}
	if len(store.experience) != 0 {
		t.Fatalf("malformed date must not reach the store, got %d writes", len(store.experience))
	}
}

func TestCreateExperienceKeepsSubmittedDate(t *testing.T) {
	router, store := newTestRouter(t)

	rec := postExperience(t, router, map[string]any{
		"employeeId":     "emp-1",
		"period":         evaluation.Period45Days,
		"evaluationDate": "2026-03-10",
		"answers":        validExperienceAnswers(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.experience) != 1 {
		t.Fatalf("expected one stored evaluation, got %d", len(store.experience))
	}

	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !store.experience[0].EvaluationDate.Equal(want) {
		t.Fatalf("expected evaluation date %v, got %v", want, store.experience[0].EvaluationDate)
	}
}

func TestCreateExperienceDefaultsOmittedDate(t *testing.T) {
	router, store := newTestRouter(t)

	rec := postExperience(t, router, map[string]any{
		"employeeId": "emp-1",
		"period":     evaluation.Period45Days,
		"answers":    validExperienceAnswers(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.experience) != 1 {
		t.Fatalf("expected one stored evaluation, got %d", len(store.experience))
	}
	if store.experience[0].EvaluationDate.IsZero() {
		t.Fatalf("omitted date should default, got zero time")
	}
}

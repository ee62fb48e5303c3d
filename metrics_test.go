package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupAPITest creates a test router with no AI dependency — enough for the
// metrics and method endpoints.
func setupAPITest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handler{}
	router := gin.New()
	h.registerRoutes(router)
	return router
}

func doJSONRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsEndpoint_Success(t *testing.T) {
	router := setupAPITest()

	w := doJSONRequest(router, "POST", "/api/fitness/metrics", validProfileJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var r fitnessResult
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if r.BMI != 24.5 {
		t.Errorf("BMI = %.1f, want 24.5", r.BMI)
	}
	if r.BodyFatMethod != methodNavy {
		t.Errorf("method = %q, want %q", r.BodyFatMethod, methodNavy)
	}
	if r.TargetCalories.Maintenance != r.TDEE {
		t.Errorf("maintenance = %d, want TDEE %d", r.TargetCalories.Maintenance, r.TDEE)
	}
}

// TestMetricsEndpoint_Validation walks the profile guards one field at a time.
func TestMetricsEndpoint_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad sex", `{"age":30,"sex":"other","height_cm":175,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"strength"}`},
		{"age too low", `{"age":15,"sex":"male","height_cm":175,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"strength"}`},
		{"age too high", `{"age":100,"sex":"male","height_cm":175,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"strength"}`},
		{"zero height", `{"age":30,"sex":"male","height_cm":0,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"strength"}`},
		{"zero weight", `{"age":30,"sex":"male","height_cm":175,"weight_kg":0,"training_days":3,"goal":"cutting","focus":"strength"}`},
		{"too many days", `{"age":30,"sex":"male","height_cm":175,"weight_kg":75,"training_days":8,"goal":"cutting","focus":"strength"}`},
		{"bad goal", `{"age":30,"sex":"male","height_cm":175,"weight_kg":75,"training_days":3,"goal":"tone","focus":"strength"}`},
		{"bad focus", `{"age":30,"sex":"male","height_cm":175,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"cardio"}`},
		{"negative neck", `{"age":30,"sex":"male","height_cm":175,"weight_kg":75,"training_days":3,"goal":"cutting","focus":"strength","neck_cm":-1}`},
		{"malformed body", `{"age": "thirty"}`},
	}
	router := setupAPITest()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSONRequest(router, "POST", "/api/fitness/metrics", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodsEndpoint_List(t *testing.T) {
	router := setupAPITest()

	w := doJSONRequest(router, "GET", "/api/fitness/methods", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var methods []methodMetadata
	if err := json.Unmarshal(w.Body.Bytes(), &methods); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(methods))
	}
	if methods[0].Key != methodNavy || methods[1].Key != methodDeurenberg {
		t.Errorf("unexpected method order: %s, %s", methods[0].Key, methods[1].Key)
	}
}

func TestMethodsEndpoint_AliasAndFallback(t *testing.T) {
	router := setupAPITest()

	w := doJSONRequest(router, "GET", "/api/fitness/methods/us_navy", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var info methodMetadata
	json.Unmarshal(w.Body.Bytes(), &info)
	if info.Key != methodNavy {
		t.Errorf("alias us_navy resolved to %q, want %q", info.Key, methodNavy)
	}

	// Unknown labels never 404 — they resolve to the deurenberg default
	w = doJSONRequest(router, "GET", "/api/fitness/methods/bogus", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &info)
	if info.Key != methodDeurenberg {
		t.Errorf("unknown label resolved to %q, want %q", info.Key, methodDeurenberg)
	}
}

func TestHealthz(t *testing.T) {
	router := setupAPITest()

	w := doJSONRequest(router, "GET", "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// TestBuildPlanPrompt verifies the prompt carries the goal-specific calorie
// target and pins the day count.
func TestBuildPlanPrompt(t *testing.T) {
	p := makeProfile()
	p.Goal = "cutting"
	r := calculateFitnessMetrics(p)

	prompt := buildPlanPrompt(p, r)
	if !strings.Contains(prompt, "exactly 3 training day(s)") {
		t.Error("prompt does not pin the training day count")
	}
	if !strings.Contains(prompt, "cutting") {
		t.Error("prompt does not mention the goal")
	}
	if !strings.Contains(prompt, "U.S. Navy") {
		t.Error("prompt does not name the body-fat method used")
	}
}

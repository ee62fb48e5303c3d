package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

// planSystemPromptTemplate includes placeholders for the user's profile and
// computed metrics so the AI tailors volume and exercise selection to them.
const planSystemPromptTemplate = `You are a strength and conditioning coach. The client is:
- Sex: %s
- Age: %d years
- Height: %.0f cm, weight: %.1f kg
- Body fat: %.1f%% (estimated via %s)
- Goal: %s, training focus: %s
- Maintenance calories: %d kcal/day (target: %d kcal/day for this goal)

Design a weekly workout plan with exactly %d training day(s). Return a JSON object with:
- "split_name" (string, short name of the split, e.g. "Upper/Lower")
- "days" (array of exactly %d objects), each with:
  - "day" (integer, 1-based position in the week)
  - "focus" (string, e.g. "Upper body strength")
  - "exercises" (array of 4-7 objects), each with:
    - "name" (string)
    - "sets" (integer)
    - "reps" (string, a range like "8-12" or a number like "5")
    - "rest_seconds" (integer)
    - "notes" (string, optional cueing or intensity guidance)
- "guidance" (string, 2-3 sentences on progression and recovery)

Match rep ranges and rest to the training focus (strength: lower reps, longer rest; hypertrophy: moderate reps, shorter rest). Only return {"error": "unrecognized"} if the profile is not something you can plan for.
Return only valid JSON, no explanation.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string                 `json:"model"`
	Messages       []openAIMessage        `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat map[string]interface{} `json:"response_format"`
}

// callOpenAI sends a chat completions request and returns the raw content
// string from the first choice. Uses raw net/http to avoid pulling in the
// OpenAI SDK. Model, temperature and timeout come from config.
func callOpenAI(ctx context.Context, messages []openAIMessage, cfg aiConfig) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := openAIRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: cfg.Temperature,
		ResponseFormat: map[string]interface{}{
			"type": "json_object",
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Parse the response to extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}

// buildPlanPrompt fills the system prompt template from the profile and the
// metrics computed for it.
func buildPlanPrompt(p userProfile, r fitnessResult) string {
	target := r.TargetCalories.Maintenance
	switch p.Goal {
	case "bulking":
		target = r.TargetCalories.Bulking
	case "cutting":
		target = r.TargetCalories.Cutting
	}
	return fmt.Sprintf(planSystemPromptTemplate,
		p.Sex, p.Age, p.HeightCM, p.WeightKG,
		r.BodyFatPct, methodCatalog[r.BodyFatMethod].DisplayName,
		p.Goal, p.Focus, r.TDEE, target,
		p.TrainingDays, p.TrainingDays)
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// generatePlan handles POST /api/fitness/plan.
// Computes metrics for the submitted profile, asks the AI for a structured
// weekly plan, and returns both together under a fresh plan ID.
func (h *Handler) generatePlan(c *gin.Context) {
	var profile userProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(profile); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	// A rest-only week leaves the AI nothing to plan.
	if profile.TrainingDays == 0 {
		apiError(c, http.StatusBadRequest, "training_days must be at least 1 to generate a plan")
		return
	}

	result := calculateFitnessMetrics(profile)

	messages := []openAIMessage{
		{Role: "system", Content: buildPlanPrompt(profile, result)},
		{Role: "user", Content: "Generate my weekly workout plan."},
	}

	content, err := callOpenAI(c.Request.Context(), messages, h.aiConfig)
	if err != nil {
		log.Printf("[plan] OpenAI error: %v", err)
		observePlanRequest("ai_error")
		apiError(c, http.StatusBadGateway, "plan generation failed")
		return
	}

	// Check if the AI declined with an "unrecognized" error
	var errorResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(content), &errorResp); err != nil {
		log.Printf("[plan] Failed to parse OpenAI response: %v", err)
		observePlanRequest("bad_response")
		apiError(c, http.StatusBadGateway, "plan generation failed")
		return
	}
	if errorResp.Error == "unrecognized" {
		observePlanRequest("unrecognized")
		c.JSON(http.StatusOK, gin.H{"error": "unrecognized"})
		return
	}

	var plan workoutPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		log.Printf("[plan] Failed to parse plan JSON: %v", err)
		observePlanRequest("bad_response")
		apiError(c, http.StatusBadGateway, "plan generation failed")
		return
	}

	// Validate that we got a usable plan (at minimum a name and non-empty days)
	if plan.SplitName == "" || len(plan.Days) == 0 {
		log.Printf("[plan] AI returned an empty plan")
		observePlanRequest("bad_response")
		apiError(c, http.StatusBadGateway, "plan generation failed")
		return
	}

	observePlanRequest("ok")
	c.JSON(http.StatusOK, planResponse{
		PlanID: uuid.New().String(),
		Result: result,
		Plan:   plan,
	})
}

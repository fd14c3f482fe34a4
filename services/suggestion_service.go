// services/suggestion_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// SuggestionService asks a hosted text model for practical adjustments to
// one day of a diet, given its current totals versus the calorie target.
type SuggestionService struct {
	db     *gorm.DB
	client *http.Client
	token  string
	model  string
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{
		db:     db,
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// ForDietDay summarizes one day of the diet and returns suggestion bullets.
func (r *SuggestionService) ForDietDay(userID, dietID uint, day string) ([]string, error) {
	if r.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}
	if !models.IsWeekDay(day) {
		return nil, fmt.Errorf("unknown day %q", day)
	}

	var diet models.Diet
	if err := r.db.
		Preload("Goal").
		Preload("Entries", "day = ?", day).
		Where("id = ? AND user_id = ? AND is_template = ?", dietID, userID, false).
		First(&diet).Error; err != nil {
		return nil, fmt.Errorf("diet not found: %w", err)
	}

	totals := AggregateDay(diet.Entries, day)
	target := EffectiveTarget(&diet)

	// build prompt
	var sb bytes.Buffer
	fmt.Fprintf(&sb, "Planned meals for %s:\n", day)
	if len(diet.Entries) == 0 {
		sb.WriteString("- (nothing planned yet)\n")
	} else {
		for _, e := range diet.Entries {
			fmt.Fprintf(&sb, "- %s: %.0f %s, %.0f kcal, %.0fg protein\n",
				e.FoodName, e.Quantity, e.Unit, e.Calories, e.Protein)
		}
	}
	fmt.Fprintf(&sb, "\nDay totals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fg fiber. Calorie target: %.0f kcal.\n",
		totals.Calories, totals.Protein, totals.Carbs, totals.Fat, totals.Fiber, target)
	sb.WriteString("Suggest 3-5 practical adjustments or additions to bring the day closer to the target while keeping macros balanced. Return plain bullet points.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 128,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", r.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")
	// Ensure HF loads cold models instead of returning a "loading" error
	req.Header.Set("x-wait-for-model", "true")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return nil, fmt.Errorf("decode hf response error: %v | body: %s", err, bodyPreview)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return nil, fmt.Errorf("empty suggestions from hf")
	}

	var recs []string
	for _, line := range strings.Split(hfOut[0].GeneratedText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			recs = append(recs, line)
		}
	}
	return recs, nil
}

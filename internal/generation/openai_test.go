package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/littlesous/backend/internal/config"
	"github.com/littlesous/backend/internal/models"
)

// chatServer returns a test server that answers every chat completion with
// the given message content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func clientFor(url string) *OpenAIClient {
	return NewOpenAIClient(&config.Config{
		OpenAIAPIKey:   "test-key",
		OpenAIAPIURL:   url,
		OpenAIImageURL: url,
		OpenAIModel:    "gpt-4o",
		ImageModel:     "dall-e-3",
		AITimeout:      5 * time.Second,
	})
}

func questionsJSON(n int) string {
	qs := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, map[string]interface{}{
			"id":       "q" + string(rune('a'+i)),
			"question": "Question?",
			"type":     "text",
			"required": false,
		})
	}
	payload, _ := json.Marshal(map[string]interface{}{"questions": qs})
	return string(payload)
}

func TestGenerateQuestions(t *testing.T) {
	t.Run("parses a valid question list", func(t *testing.T) {
		srv := chatServer(t, questionsJSON(7))
		c := clientFor(srv.URL)

		questions, err := c.GenerateQuestions(context.Background(), "Emma", 8, models.ThemeGirls)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(questions) != 7 {
			t.Errorf("got %d questions, want 7", len(questions))
		}
	})

	t.Run("accepts fenced JSON", func(t *testing.T) {
		srv := chatServer(t, "```json\n"+questionsJSON(6)+"\n```")
		c := clientFor(srv.URL)

		questions, err := c.GenerateQuestions(context.Background(), "Emma", 8, models.ThemeGirls)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(questions) != 6 {
			t.Errorf("got %d questions, want 6", len(questions))
		}
	})

	t.Run("rejects question counts outside the allowed range", func(t *testing.T) {
		for _, n := range []int{5, 9} {
			srv := chatServer(t, questionsJSON(n))
			c := clientFor(srv.URL)
			if _, err := c.GenerateQuestions(context.Background(), "Emma", 8, models.ThemeGirls); err == nil {
				t.Errorf("%d questions accepted, want error", n)
			}
		}
	})

	t.Run("rejects a choice question without options", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{
			"questions": []map[string]interface{}{
				{"id": "q1", "question": "Pick one", "type": "single_choice"},
				{"id": "q2", "question": "Q", "type": "text"},
				{"id": "q3", "question": "Q", "type": "text"},
				{"id": "q4", "question": "Q", "type": "text"},
				{"id": "q5", "question": "Q", "type": "text"},
				{"id": "q6", "question": "Q", "type": "text"},
			},
		})
		srv := chatServer(t, string(payload))
		c := clientFor(srv.URL)
		if _, err := c.GenerateQuestions(context.Background(), "Emma", 8, models.ThemeGirls); err == nil {
			t.Error("choice question without options accepted")
		}
	})

	t.Run("fails on a provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)
		c := clientFor(srv.URL)
		if _, err := c.GenerateQuestions(context.Background(), "Emma", 8, models.ThemeGirls); err == nil {
			t.Error("provider error status accepted")
		}
	})
}

func TestGenerateRecipe(t *testing.T) {
	validRecipe := map[string]interface{}{
		"title":       "Rainbow Pancakes",
		"description": "Fluffy and fun.",
		"ingredients": []map[string]string{
			{"item": "flour", "amount": "2 cups"},
		},
		"instructions": []map[string]interface{}{
			{"step": 1, "instruction": "Mix."},
		},
		"cookingTime": 20,
		"difficulty":  "beginner",
		"category":    "breakfast",
	}

	t.Run("parses a valid recipe", func(t *testing.T) {
		payload, _ := json.Marshal(validRecipe)
		srv := chatServer(t, string(payload))
		c := clientFor(srv.URL)

		recipe, err := c.GenerateRecipe(context.Background(), RecipeRequest{ChildName: "Emma", Age: 8})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if recipe.Title != "Rainbow Pancakes" {
			t.Errorf("title = %q", recipe.Title)
		}
	})

	t.Run("normalizes an unknown difficulty to beginner", func(t *testing.T) {
		r := map[string]interface{}{}
		for k, v := range validRecipe {
			r[k] = v
		}
		r["difficulty"] = "impossible"
		payload, _ := json.Marshal(r)
		srv := chatServer(t, string(payload))
		c := clientFor(srv.URL)

		recipe, err := c.GenerateRecipe(context.Background(), RecipeRequest{ChildName: "Emma", Age: 8})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if recipe.Difficulty != models.DifficultyBeginner {
			t.Errorf("difficulty = %q, want beginner", recipe.Difficulty)
		}
	})

	t.Run("rejects an incomplete recipe", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{"title": "Just a Title"})
		srv := chatServer(t, string(payload))
		c := clientFor(srv.URL)
		if _, err := c.GenerateRecipe(context.Background(), RecipeRequest{ChildName: "Emma", Age: 8}); err == nil {
			t.Error("incomplete recipe accepted")
		}
	})
}

func TestGenerateImage(t *testing.T) {
	t.Run("returns the image url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]string{{"url": "https://images.example.com/out.png"}},
			})
		}))
		t.Cleanup(srv.Close)
		c := clientFor(srv.URL)

		url, err := c.GenerateImage(context.Background(), "Rainbow Pancakes", 8, models.ThemeGirls)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if url != "https://images.example.com/out.png" {
			t.Errorf("url = %q", url)
		}
	})

	t.Run("fails when the response has no image", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		}))
		t.Cleanup(srv.Close)
		c := clientFor(srv.URL)
		if _, err := c.GenerateImage(context.Background(), "Rainbow Pancakes", 8, models.ThemeGirls); err == nil {
			t.Error("empty image response accepted")
		}
	})
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here you go: {"a":1} enjoy!`, `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Fires the canonical agent-platform payloads at a running server so the
// webhook flow can be exercised end to end without the real platform.

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3001"
	}
	webhookURL := apiURL + "/api/elevenlabs/webhook"

	log.Println("Starting webhook tests against", apiURL)

	// Started event on its own
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.started",
		"conversation_id": fmt.Sprintf("test-conv-%d", time.Now().UnixMilli()),
		"video_id":        "1",
		"user_id":         "default",
	})

	// Full flow with catalog answers for module 4
	convID := fmt.Sprintf("test-conv-%d", time.Now().UnixMilli())
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.started",
		"conversation_id": convID,
		"video_id":        "4",
		"user_id":         "default",
	})
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.completed",
		"conversation_id": convID,
		"video_id":        "4",
		"user_id":         "default",
		"answers": map[string]string{
			"q4-1": "initiators can create and manage items in KissFlow",
			"q4-2": "they can create, submit, and track items",
		},
		"metadata": map[string]interface{}{
			"duration":          120,
			"questions_asked":   2,
			"min_questions":     2,
			"validation_passed": true,
		},
	})

	// Agent rejected the answers upstream (hybrid path, no catalog module)
	convID2 := fmt.Sprintf("test-conv-%d", time.Now().UnixMilli())
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.started",
		"conversation_id": convID2,
		"video_id":        "demo",
		"user_id":         "default",
	})
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.completed",
		"conversation_id": convID2,
		"answers": map[string]string{
			"q1": "wrong answer",
			"q2": "another wrong answer",
		},
		"metadata": map[string]interface{}{
			"min_questions":     2,
			"validation_passed": false,
		},
	})

	// Too few answers
	postEvent(webhookURL, map[string]interface{}{
		"event":           "conversation.completed",
		"conversation_id": fmt.Sprintf("test-conv-%d", time.Now().UnixMilli()),
		"video_id":        "demo",
		"answers":         map[string]string{"q1": "only one answer"},
		"metadata":        map[string]interface{}{"min_questions": 2},
	})

	// Unknown event type must still be acknowledged
	postEvent(webhookURL, map[string]interface{}{
		"event": "conversation.transcript_ready",
	})

	log.Println("All tests completed")
}

func postEvent(url string, payload map[string]interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	log.Printf("POST %s event=%v", url, payload["event"])
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("parse response: %v", err)
		return
	}
	log.Printf("  -> %d %v", resp.StatusCode, out)

	time.Sleep(200 * time.Millisecond)
}

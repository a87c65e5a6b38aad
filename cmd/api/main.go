package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/netutil"

	"smart-task-planner/internal/ai"
	"smart-task-planner/internal/config"
	"smart-task-planner/internal/planner"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatal("❌ OPENAI_API_KEY is not set")
	}

	aiClient := ai.New(ai.Options{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
	})

	handler := planner.NewHandler(planner.NewGenerator(aiClient))

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Smart Task Planner API",
		})
	})

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- BREAKDOWN API -----
	mux.HandleFunc("/api/v1/breakdown", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handler.Breakdown(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("❌ Failed to listen:", err)
	}
	ln = netutil.LimitListener(ln, cfg.MaxConns)

	log.Printf("🚀 API server is running on %s", addr)
	log.Fatal(http.Serve(ln, c.Handler(mux)))
}

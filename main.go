// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"flygoldfinch/api/chat"
	"flygoldfinch/api/database"
	"flygoldfinch/api/email"
	"flygoldfinch/api/handlers"
	"flygoldfinch/api/middleware"
	"flygoldfinch/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize PostgreSQL Database (contacts, partial form data) ---
	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse Database (analytics event log) ---
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	// --- Initialize Stores ---
	analyticsStore := store.NewAnalyticsStore(chClient)
	formStore := store.NewFormStore(dbClient.DB)
	contactStore := store.NewContactStore(dbClient.DB)

	// --- Initialize the travel assistant (optional, needs GEMINI_API_KEY) ---
	assistant, err := chat.NewAssistantFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize travel assistant: %v", err)
	}
	if assistant == nil {
		log.Println("GEMINI_API_KEY not set; chat endpoint disabled.")
	}

	// --- Initialize Handlers ---
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore, formStore)
	contactHandlers := handlers.NewContactHandlers(contactStore, email.NewMailerFromEnv())
	itineraryHandlers := handlers.NewItineraryHandlers()
	var chatModel handlers.ChatModel
	if assistant != nil {
		chatModel = assistant
	}
	chatHandlers := handlers.NewChatHandlers(chatModel)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		// Ingestion endpoints hit by the browser tracker (fire-and-forget)
		api.POST("/track", analyticsHandlers.TrackEvent)
		api.POST("/partial-form", analyticsHandlers.SavePartialForm)

		// Admin dashboard rollup
		api.GET("/admin/summary", analyticsHandlers.GetSummary)

		// Site content and forms
		api.POST("/contact", contactHandlers.SubmitContact)
		api.GET("/itineraries", itineraryHandlers.ListItineraries)
		api.GET("/itineraries/:slug", itineraryHandlers.GetItinerary)
		api.POST("/chat", chatHandlers.Chat)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Go API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Go API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

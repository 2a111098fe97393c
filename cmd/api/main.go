package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadstore/internal/infra/database"
	"github.com/xavierca1/leadstore/internal/infra/http/handlers"
	appmw "github.com/xavierca1/leadstore/internal/infra/http/middleware"
	"github.com/xavierca1/leadstore/internal/infra/integration/genderize"
	"github.com/xavierca1/leadstore/internal/infra/mail"
	"github.com/xavierca1/leadstore/internal/infra/queue"
	"github.com/xavierca1/leadstore/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ database connection failed: %v", err)
	}
	defer db.Close()

	// 1. Repository
	leadRepo := database.NewLeadRepository(db)

	// 2. Outbound adapters
	classifier := genderize.NewClient(os.Getenv("GENDERIZE_URL"), os.Getenv("GENDERIZE_API_KEY"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Broker (optional: imports still work without async enrichment)
	var producer usecase.EnrichmentQueue
	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable, running without async enrichment: %v", err)
		rabbitMQ = nil
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 4. Use cases
	importUC := usecase.NewImportLeadsUseCase(leadRepo, producer)
	deleteUC := usecase.NewDeleteLeadsUseCase(leadRepo)
	guessUC := usecase.NewGuessGenderUseCase(leadRepo, classifier)
	generateUC := usecase.NewGenerateMessageUseCase(leadRepo)
	sendUC := usecase.NewSendMessageUseCase(leadRepo, mailSender)

	// 5. Worker (consumes enrichment events for imported leads)
	if rabbitMQ != nil {
		worker := queue.NewWorker(rabbitMQ.Ch, guessUC)
		go worker.Start(queue.QueueName)
	}

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, deleteUC)
	importHandler := handlers.NewImportHandler(importUC)
	enrichmentHandler := handlers.NewEnrichmentHandler(guessUC)
	messageHandler := handlers.NewMessageHandler(generateUC, sendUC)
	var brokerConn *amqp.Connection
	if rabbitMQ != nil {
		brokerConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, brokerConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.GetMany)
	r.Delete("/leads", leadHandler.DeleteMany)
	r.Get("/leads/{id}", leadHandler.GetOne)
	r.Patch("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)
	r.Post("/leads/{id}/guess-gender", enrichmentHandler.Handle)
	r.Post("/leads/{id}/generate-message", messageHandler.HandleGenerate)
	r.Post("/leads/{id}/send-message", messageHandler.HandleSend)
	r.Post("/leads/insert-from-csv", importHandler.Handle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("🔥 leadstore API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}

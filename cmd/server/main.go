// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/janemutua/customer-records-backend/internal/controller"
	"github.com/janemutua/customer-records-backend/internal/db"
	"github.com/janemutua/customer-records-backend/internal/queue"
	"github.com/janemutua/customer-records-backend/internal/repository"
	"github.com/janemutua/customer-records-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()
	log.Println("✅ Connected to database")

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}
	log.Println("Tables created successfully")

	customerRepo := &repository.CustomerRepository{DB: conn}
	addressRepo := &repository.AddressRepository{DB: conn}
	eventRepo := &repository.EventRepository{DB: conn}

	// Customer change events go to RabbitMQ when configured, otherwise to an
	// in-process queue drained straight into the event log.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		amqpQueue, err := queue.NewAMQPQueue(amqpURL)
		if err != nil {
			log.Fatalf("failed to connect to queue: %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartEventLogSubscriber(memQueue, eventRepo)
		q = memQueue
	}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		Queue:        q,
	}
	addressService := &service.AddressService{
		AddressRepo: addressRepo,
		Queue:       q,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}
	addressController := &controller.AddressController{
		AddressService: addressService,
	}

	r := chi.NewRouter()

	// Customer routes
	r.Post("/customers", customerController.CreateCustomer)
	r.Get("/customers/search", customerController.SearchCustomers)
	r.Get("/customers/one-address", customerController.CustomersWithOneAddress)
	r.Get("/customers/{id}", customerController.GetCustomer)
	r.Put("/customers/{id}", customerController.UpdateCustomer)
	r.Delete("/customers/{id}", customerController.DeleteCustomer)

	// Address routes
	r.Get("/customers/{id}/addresses", addressController.ListCustomerAddresses)
	r.Put("/addresses/{id}", addressController.UpdateAddress)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

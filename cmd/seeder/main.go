//cmd/seeder/main.go
package main

import (
    "fmt"
    "log"
    "os"

    "github.com/joho/godotenv"
    _ "github.com/lib/pq"

    "github.com/janemutua/customer-records-backend/internal/db"
)

// Addresses have no creation endpoint in the API; they enter the system
// through these seed files.
func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    conn, err := db.Connect()
    if err != nil {
        log.Fatal(err)
    }
    defer conn.Close()

    if err := db.EnsureSchema(conn); err != nil {
        log.Fatal(err)
    }

    seedFiles := []string{
        "seed/customers.sql",
        "seed/addresses.sql",
    }

    for _, file := range seedFiles {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        _, err = conn.Exec(string(content))
        if err != nil {
            log.Fatalf("failed to execute %s: %v", file, err)
        }
        fmt.Printf("Seeded: %s\n", file)
    }

    fmt.Println("Database seeding completed successfully!")
}

// scripts/seed-contacts/main.go
//
// Seeds the contact directory with sample data, including duplicate names
// so attendee disambiguation can be exercised end to end.
//
// Usage:
//   go run scripts/seed-contacts/main.go [db-path]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"scheduling-assistant/internal/contact/repository"
	contactSqlite "scheduling-assistant/internal/contact/repository/sqlite"
	pkgLog "scheduling-assistant/pkg/log"
)

var sampleContacts = []struct {
	firstName, lastName, email string
}{
	{"John", "Smith", "john.smith@example.com"},
	{"Jane", "Doe", "jane.doe@example.com"},
	{"Michael", "Johnson", "michael.johnson@example.com"},
	{"Emily", "Davis", "emily.davis@example.com"},
	{"John", "Smith", "john.smith2@example.com"}, // Duplicate name
	{"Sarah", "Wilson", "sarah.wilson@example.com"},
	{"David", "Brown", "david.brown@example.com"},
	{"Jennifer", "Miller", "jennifer.miller@example.com"},
	{"Robert", "Jones", "robert.jones@example.com"},
	{"Jessica", "Garcia", "jessica.garcia@example.com"},
	{"Rutuj", "Desai", "rutuj.desai@example.com"},
	{"Rutuj", "Desai", "rutuj.desai2@example.com"}, // Duplicate name
	{"John", "Doe", "john.doe@example.com"},
	{"Mary", "Johnson", "mary.johnson@example.com"},
}

func main() {
	dbPath := "data/contacts.db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	db, err := contactSqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open contacts database %q: %v", dbPath, err)
	}
	defer db.Close()

	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:    "info",
		Mode:     "debug",
		Encoding: "console",
	})

	repo := contactSqlite.New(db, logger)
	ctx := context.Background()

	seeded := 0
	for _, c := range sampleContacts {
		_, err := repo.CreateContact(ctx, repository.CreateContactOptions{
			FirstName: c.firstName,
			LastName:  c.lastName,
			Email:     c.email,
		})
		if err != nil {
			// Re-running the script hits the unique email constraint; skip.
			fmt.Printf("skip %s %s <%s>: %v\n", c.firstName, c.lastName, c.email, err)
			continue
		}
		seeded++
	}

	fmt.Printf("Seeded %d/%d contacts into %s\n", seeded, len(sampleContacts), dbPath)
}

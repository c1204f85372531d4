package database

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"namo_back_end/internal/models"
)

// SeedAdmin makes sure the administrator account exists. The admin is a
// regular user row with role "admin"; there is no shared sentinel token.
func SeedAdmin(ctx context.Context) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️  ADMIN_EMAIL/ADMIN_PASSWORD not set — no admin account seeded")
		return
	}

	var exists bool
	err := Postgres.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		log.Println("❌ Admin seed check failed:", err)
		return
	}
	if exists {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("❌ Admin password hash failed:", err)
		return
	}

	_, err = Postgres.Exec(ctx,
		`INSERT INTO users (user_id, username, email, password, role) VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), getenv("ADMIN_USERNAME", "Namo"), email, string(hashed), models.RoleAdmin)
	if err != nil {
		log.Println("❌ Admin seed failed:", err)
		return
	}
	log.Println("✅ Admin account seeded:", email)
}

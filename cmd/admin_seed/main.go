// Command admin_seed prints the environment entries for the back-office
// admin account. The password is bcrypt-hashed so only the hash is stored.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"moneybag/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := strings.TrimSpace(strings.ToLower(os.Getenv("ADMIN_EMAIL")))
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}
	if len(adminPassword) < 12 {
		log.Fatal("ADMIN_PASSWORD must be at least 12 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	fmt.Printf("ADMIN_EMAIL=%s\n", adminEmail)
	// Single quotes keep the $ segments of the hash literal in .env files.
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hashedPassword)

	log.Println("✅ Admin credentials generated, add them to your environment")
}

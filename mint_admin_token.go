//go:build ignore

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🔑 Admin Token Minter")
	fmt.Println("---------------------")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
		fmt.Println("Continuing with environment variables...")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("❌ JWT_SECRET environment variable is required")
		fmt.Println("Please set it in your .env file or environment")
		os.Exit(1)
	}

	subject := os.Getenv("ADMIN_SUBJECT")
	if subject == "" {
		subject = "admin"
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		fmt.Printf("❌ Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Use this bearer token on admin endpoints (valid 24h):")
	fmt.Printf("\n%s\n", signed)
}

// Command mktoken mints a signed service token for an API client. The
// signing secret comes from AUTH_SECRET, matching the server's config.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/securepass/securepass-go/internal/crypto"
)

func main() {
	clientID := flag.String("client", "", "Client identifier to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *clientID == "" {
		fmt.Fprintln(os.Stderr, "error: -client is required")
		os.Exit(2)
	}

	_ = godotenv.Load()

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "error: AUTH_SECRET is not set")
		os.Exit(1)
	}

	token, err := crypto.GenerateToken(*clientID, secret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

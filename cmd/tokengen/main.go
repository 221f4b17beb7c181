package main

import (
	"fmt"
	"os"

	"github.com/arnavshah/vacancy-bidding-api/pkg/auth"
	"github.com/arnavshah/vacancy-bidding-api/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tokengen <username>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	username := os.Args[1]
	token, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL).CreateToken(username)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Token for %s (valid %s):\n%s\n", username, cfg.TokenTTL, token)
}

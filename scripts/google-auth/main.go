// scripts/google-auth/main.go
//
// Run this locally to obtain a Google ID token credential for testing
// POST /api/v1/auth/login/google against a real Google account.
//
// Usage:
//   go run scripts/google-auth/main.go [credentials.json]
//
// It prints a browser URL, you log in with your Google account, paste the
// authorization code, and the resulting ID token is printed to stdout.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, "openid", "email", "profile")
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		log.Fatal("Token response carried no id_token; check that the openid scope was granted")
	}

	fmt.Println()
	fmt.Println("ID token credential (send as {\"credential\": ...} to /api/v1/auth/login/google):")
	fmt.Println()
	fmt.Println(idToken)
}

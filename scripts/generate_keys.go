//go:build ignore

// Generates API keys for the X-API-Key header.
// Run with: go run scripts/generate_keys.go [count]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func generateAPIKey() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := 1
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid key count %q\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	keys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		key, err := generateAPIKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("# Quote optimizer authentication (set AUTH_ENABLED=true)")
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Println()
	fmt.Println("Never commit these keys. Use different keys per environment.")
}

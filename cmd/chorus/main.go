package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"chorus/internal/cmd"
)

func main() {
	// A local .env can hold CHORUS_* overrides during development.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

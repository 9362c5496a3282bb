package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/memo/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

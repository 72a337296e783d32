package main

import (
	"os"

	"github.com/Abdulllah321/ekka-admin-dashboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the healthdata CLI
package main

import (
	"os"

	"github.com/ONSdigital/dp-healthdata-discovery/cli"
	"github.com/ONSdigital/log.go/v2/log"
)

func main() {
	log.Namespace = "healthdata"
	log.SetDestination(os.Stderr, os.Stderr)

	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

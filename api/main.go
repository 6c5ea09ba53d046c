package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/inventory-manager/internal/cli"
)

// @title Inventory Manager API
// @version 1.0
// @description REST API for the in-memory product inventory: products, low-stock report and dashboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

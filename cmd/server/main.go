// Package main - Entry point for the membership pricing server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"gym-cost/api"
	"gym-cost/core/catalog"
	"gym-cost/core/pricing"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	catalogFile := flag.String("catalog", "", "Optional catalog definition file (HCL)")
	flag.Parse()

	cat := catalog.Default()
	if *catalogFile != "" {
		if err := cat.LoadFile(*catalogFile); err != nil {
			log.Fatalf("loading catalog file: %v", err)
		}
	}

	apiServer := api.NewServer(version, pricing.NewEngine(cat))

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("Gym membership pricing server v%s\n", version)
	fmt.Printf("API: http://localhost%s/api\n", *addr)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}

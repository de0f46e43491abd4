package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"prodsched/internal/configsvc"
)

// sync-config fetches a fleet's machine-stats/shift-pattern config
// bundle from the remote fleet-management service and writes it to a
// local YAML file, grounded on the teacher's update-locations command:
// an env-var API key, a remote fetch, and a local file write.
func main() {
	var (
		fleetID = flag.String("fleet-id", "", "Fleet ID to fetch config for")
		version = flag.String("version", "", "Optional bundle version (default: latest)")
		output  = flag.String("output", "config.yaml", "Output YAML path")
	)
	flag.Parse()

	if *fleetID == "" {
		fmt.Println("--fleet-id is required")
		os.Exit(2)
	}

	apiKey := os.Getenv("FLEETCONFIG_API_KEY")
	if apiKey == "" {
		log.Fatal("FLEETCONFIG_API_KEY environment variable is required")
	}

	client := configsvc.NewClient(apiKey, os.Getenv("FLEETCONFIG_BASE_URL"))

	fmt.Printf("Fetching config for fleet %s (version=%q)\n", *fleetID, *version)
	cfg, err := client.FetchBundle(configsvc.FetchBundleParams{FleetID: *fleetID, Version: *version})
	if err != nil {
		log.Fatalf("Failed to fetch config: %v", err)
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		log.Fatalf("Failed to encode config: %v", err)
	}
	if err := os.WriteFile(*output, raw, 0o644); err != nil {
		log.Fatalf("Failed to write config: %v", err)
	}

	fmt.Printf("Wrote %d machines, %d shift patterns to %s\n", len(cfg.Machines), len(cfg.ShiftPatterns), *output)
}

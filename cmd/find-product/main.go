package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/client/catalog"
	"github.com/govipola/storefront/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <name or id>")
		fmt.Println("Example: go run cmd/find-product/main.go \"Tomatoes\"")
		os.Exit(1)
	}

	query := strings.ToLower(os.Args[1])

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := catalog.NewClient(cfg.Catalog, logger)

	fmt.Printf("🔍 Searching catalog for: %s\n\n", os.Args[1])

	products, err := client.FetchProducts(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	found := false
	for _, p := range products {
		if p.ID != os.Args[1] && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		found = true
		fmt.Printf("✅ %s\n", p.Name)
		fmt.Printf("   ID: %s\n", p.ID)
		fmt.Printf("   Category: %s\n", p.Category)
		fmt.Printf("   Price: %.2f\n", p.Price)
		fmt.Printf("   Available: %d\n", p.Quantity)
		if p.AverageRating > 0 {
			fmt.Printf("   Rating: %.1f (%d reviews)\n", p.AverageRating, len(p.Reviews))
		}
		fmt.Println()
	}

	if !found {
		fmt.Printf("❌ No product matching '%s' in the catalog.\n", os.Args[1])
		os.Exit(1)
	}
}

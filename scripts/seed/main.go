// Seeds a running StockPilot server with demo catalog data over its HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

var items = []map[string]any{
	{"name": "Arabica Beans 1kg", "barcode": "8990001110011", "sku": "BN-AR-1", "category": "Coffee", "price": 18.5, "cost": 11.0, "qty": 24, "min": 6},
	{"name": "Robusta Beans 1kg", "barcode": "8990001110028", "sku": "BN-RO-1", "category": "Coffee", "price": 14.0, "cost": 8.0, "qty": 12, "min": 6},
	{"name": "Paper Cups 12oz (50)", "barcode": "8990001110035", "sku": "CP-12-50", "category": "Supplies", "price": 6.5, "cost": 3.8, "qty": 4, "min": 10},
	{"name": "Cup Lids (100)", "barcode": "8990001110042", "sku": "LD-100", "category": "Supplies", "price": 5.0, "cost": 2.5, "qty": 0, "min": 10},
	{"name": "Oat Milk 1L", "barcode": "8990001110059", "sku": "MK-OAT-1", "category": "Dairy", "price": 3.2, "cost": 2.1, "qty": 30, "min": 8},
}

var suppliers = []map[string]any{
	{"name": "Acme Bean Traders", "email": "orders@acmebeans.test", "phone": "555-0101"},
	{"name": "Metro Packaging", "email": "sales@metropack.test", "phone": "555-0102"},
}

var categories = []string{"Coffee", "Supplies", "Dairy"}

func main() {
	base := getenv("STOCKPILOT_URL", "http://localhost:8080") + "/api/v1"
	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println("→ Seeding categories...")
	for _, name := range categories {
		post(client, base+"/categories", map[string]any{"name": name})
	}

	fmt.Println("→ Seeding suppliers...")
	for _, s := range suppliers {
		post(client, base+"/suppliers", s)
	}

	fmt.Println("→ Seeding items...")
	for _, item := range items {
		post(client, base+"/items", item)
	}

	fmt.Println("✓ Done")
}

func post(client *http.Client, url string, body map[string]any) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Fatalf("post %s: unexpected status %s", url, resp.Status)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

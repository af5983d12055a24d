// Command dbinspect dumps a summary of a Kitaplık data directory.
// Development tool; the output format is not stable.
package main

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kitaplikapp/kitaplik-core/internal/domain"
	"github.com/kitaplikapp/kitaplik-core/internal/kv"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Kitaplik/data")
	}

	var store kv.Store
	var err error
	if os.Getenv("STORAGE_BACKEND") == "badger" {
		store, err = kv.NewBadgerStore(filepath.Join(dataPath, "badger"), nil)
	} else {
		store, err = kv.NewBoltStore(filepath.Join(dataPath, "kitaplik.db"), nil)
	}
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	fmt.Println("=== Store Inspection ===")
	fmt.Printf("Backend: %s\n", store.Name())
	fmt.Println()

	keys, err := store.Keys(ctx)
	if err != nil {
		log.Fatalf("Failed to list keys: %v", err)
	}
	fmt.Printf("Keys: %d\n", len(keys))
	for _, key := range keys {
		fmt.Printf("  %s\n", key)
	}
	fmt.Println()

	raw, ok, err := store.Get(ctx, "books")
	if err != nil {
		log.Fatalf("Failed to read books: %v", err)
	}
	if !ok {
		fmt.Println("No books document.")
		return
	}

	var doc struct {
		Version int           `json:"version"`
		Books   []domain.Book `json:"books"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Fatalf("Failed to decode books document: %v", err)
	}

	byStatus := map[domain.Status]int{}
	byGenre := map[string]int{}
	for i := range doc.Books {
		byStatus[doc.Books[i].Status]++
		byGenre[doc.Books[i].Genre]++
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Document version: %d\n", doc.Version)
	fmt.Printf("Total books: %d\n", len(doc.Books))
	for _, status := range []domain.Status{domain.StatusToRead, domain.StatusReading, domain.StatusRead} {
		fmt.Printf("  %s: %d\n", status, byStatus[status])
	}
	fmt.Println()
	fmt.Println("Genres:")
	for genre, count := range byGenre {
		fmt.Printf("  %s: %d\n", genre, count)
	}
}

// Backfills army books written before revisions and split page defaults:
// stamps a revision on unversioned documents, defaults units with no split
// page, and restores missing owner and game system index entries. Corrupted documents are
// listed and optionally deleted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/armybook-api/internal/entities"
)

const (
	bookKeyPattern        = "army_book:*"
	userIndexPrefix       = "army_books:user:"
	gameSystemIndexPrefix = "army_books:game_system:"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report without writing")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning army books...")

	var (
		corruptedKeys []string
		checkedCount  int
		fixedCount    int
	)

	iter := client.Scan(ctx, 0, bookKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var book entities.ArmyBook
		if err := json.Unmarshal(data, &book); err != nil || book.UID == "" || book.UserID == "" {
			fmt.Printf("✗ Corrupted document in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		changed := backfill(&book)
		missing, err := missingIndexes(ctx, client, &book)
		if err != nil {
			fmt.Printf("Error checking indexes for %s: %v\n", key, err)
			continue
		}
		if !changed && len(missing) == 0 {
			continue
		}

		fmt.Printf("• %s: defaults=%v missing indexes=%v\n", key, changed, missing)
		if *dryRun {
			continue
		}

		if err := save(ctx, client, key, &book, changed, missing); err != nil {
			fmt.Printf("Failed to fix %s: %v\n", key, err)
			continue
		}
		fixedCount++
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d books, fixed %d, found %d corrupted\n", checkedCount, fixedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 || *dryRun {
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty answer means no

	if response != "yes" {
		fmt.Println("Aborted - no deletions made")
		return
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}

// backfill applies load-time defaults permanently and reports whether the
// document changed
func backfill(book *entities.ArmyBook) bool {
	changed := false
	for _, u := range book.Units {
		if u != nil && u.SplitPageNumber == 0 {
			changed = true
		}
	}
	book.FillDefaults()

	if book.Revision == 0 {
		book.Revision = 1
		changed = true
	}
	return changed
}

// missingIndexes lists the index sets that do not contain the book
func missingIndexes(ctx context.Context, client *redis.Client, book *entities.ArmyBook) ([]string, error) {
	keys := []string{userIndexPrefix + book.UserID}
	for _, id := range book.EnabledGameSystems {
		keys = append(keys, gameSystemIndexPrefix+strconv.Itoa(id))
	}

	var missing []string
	for _, indexKey := range keys {
		indexed, err := client.SIsMember(ctx, indexKey, book.UID).Result()
		if err != nil {
			return nil, err
		}
		if !indexed {
			missing = append(missing, indexKey)
		}
	}
	return missing, nil
}

func save(ctx context.Context, client *redis.Client, key string, book *entities.ArmyBook, changed bool, missing []string) error {
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if changed {
			data, err := json.Marshal(book)
			if err != nil {
				return err
			}
			pipe.Set(ctx, key, data, redis.KeepTTL)
		}
		for _, indexKey := range missing {
			pipe.SAdd(ctx, indexKey, book.UID)
		}
		return nil
	})
	return err
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
)

func main() {
	redisURL := os.Getenv("RETOOL_REDIS_URL")
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
	fmt.Println("Scanning catalog batches...")

	iter := client.Scan(ctx, 0, "catalog:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount, reindexed int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, ":index") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var batch catalog.Batch
		if err := json.Unmarshal([]byte(data), &batch); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if !gjson.ParseBytes(batch.Records).IsArray() && batch.Kind != "dummy" {
			fmt.Printf("✗ Records in %s are not an array\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if key != catalog.BatchKey(batch.Kind, batch.ID) {
			fmt.Printf("✗ %s holds batch %s/%s\n", key, batch.Kind, batch.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Batches written before the index existed are missing from it
		indexKey := catalog.IndexKey(batch.Kind)
		if err := client.ZScore(ctx, indexKey, batch.ID).Err(); err == redis.Nil {
			if err := client.ZAdd(ctx, indexKey, redis.Z{
				Score:  float64(batch.CreatedAt.UnixNano()),
				Member: batch.ID,
			}).Err(); err != nil {
				fmt.Printf("Failed to index %s: %v\n", key, err)
				continue
			}
			reindexed++
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d batches, re-indexed %d, found %d corrupted entries\n",
		checkedCount, reindexed, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-retool/internal/convert"
	"github.com/KirkDiggler/rpg-retool/internal/errors"
	"github.com/KirkDiggler/rpg-retool/internal/redis"
	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-retool/internal/services/conversion"
)

var (
	publishKind  string
	publishInput string
	redisAddr    string

	listKind  string
	listLimit int

	showKind string
	showID   string
)

var publishCmd = &cobra.Command{
	Use:     "publish",
	Short:   "Convert a document and store the records in the Redis catalog",
	Example: `  retool publish --kind race --input data/races.json --redis-addr localhost:6379`,
	RunE:    runPublish,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List published batches, newest first",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the records of a published batch",
	Example: `  retool show --kind feat --id 6f1c0e4a-...`,
	RunE:    runShow,
}

func init() {
	publishCmd.Flags().StringVar(&publishKind, "kind", "", "converter kind: dummy, feat, race")
	publishCmd.Flags().StringVarP(&publishInput, "input", "i", "", "input document path")
	_ = publishCmd.MarkFlagRequired("kind")
	_ = publishCmd.MarkFlagRequired("input")

	listCmd.Flags().StringVar(&listKind, "kind", "", "converter kind: dummy, feat, race")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of batches (0 for all)")
	_ = listCmd.MarkFlagRequired("kind")

	showCmd.Flags().StringVar(&showKind, "kind", "", "converter kind: dummy, feat, race")
	showCmd.Flags().StringVar(&showID, "id", "", "batch ID")
	_ = showCmd.MarkFlagRequired("kind")
	_ = showCmd.MarkFlagRequired("id")

	for _, c := range []*cobra.Command{publishCmd, listCmd, showCmd} {
		c.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (overrides RETOOL_REDIS_ADDR)")
	}
}

func runPublish(cmd *cobra.Command, _ []string) error {
	kind, err := convert.ParseKind(publishKind)
	if err != nil {
		return err
	}

	svc, closeFn, err := catalogService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := svc.Publish(cmd.Context(), &conversion.PublishInput{
		Kind:      kind,
		InputPath: publishInput,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Published %d %s records as %s (%s)\n", out.Count, kind, out.BatchID, out.Key)
	return err
}

func runList(cmd *cobra.Command, _ []string) error {
	kind, err := convert.ParseKind(listKind)
	if err != nil {
		return err
	}

	svc, closeFn, err := catalogService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := svc.ListBatches(cmd.Context(), &conversion.ListBatchesInput{Kind: kind, Limit: listLimit})
	if err != nil {
		return err
	}

	for _, id := range out.BatchIDs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
			return err
		}
	}
	return nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	kind, err := convert.ParseKind(showKind)
	if err != nil {
		return err
	}

	svc, closeFn, err := catalogService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := svc.GetBatch(cmd.Context(), &conversion.GetBatchInput{Kind: kind, BatchID: showID})
	if err != nil {
		return err
	}

	var records bytes.Buffer
	if err := json.Indent(&records, out.Batch.Records, "", "    "); err != nil {
		return errors.Wrapf(err, "batch %s holds invalid records", out.Batch.ID)
	}

	logger.Info("Loaded batch",
		"batch_id", out.Batch.ID,
		"source", out.Batch.Source,
		"created_at", out.Batch.CreatedAt,
		"records", out.Batch.Count)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), records.String())
	return err
}

// catalogService connects to Redis and returns a service backed by the
// catalog. The returned func closes the connection.
func catalogService(cmd *cobra.Command) (conversion.Service, func(), error) {
	addr := cfg.Redis.Addr
	if redisAddr != "" {
		addr = redisAddr
	}

	client, err := redis.NewClient(addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close() }

	if err := redis.Ping(cmd.Context(), client); err != nil {
		closeFn()
		return nil, nil, err
	}

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	svc, err := conversion.New(&conversion.Config{
		Catalog: repo,
		Logger:  logger,
		Workers: cfg.Workers,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return svc, closeFn, nil
}

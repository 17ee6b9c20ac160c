package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/segmentio/kafka-go"

	"github.com/febdev/feb_shop/internal/logging"
)

// Indexer tails product_events and mirrors them into the search index, so the
// catalog handlers never talk to elasticsearch on the request path.
type Indexer struct {
	ES      *elasticsearch.Client
	Index   string
	Brokers []string
	GroupID string
}

type productEvent struct {
	Type        string  `json:"type"`
	ProductID   int     `json:"productID"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (ix *Indexer) Run(ctx context.Context) error {
	l := logging.FromContext(ctx).With("service", "search_indexer")

	groupID := ix.GroupID
	if groupID == "" {
		groupID = "search-indexer"
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  ix.Brokers,
		GroupID:  groupID,
		Topic:    "product_events",
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer r.Close()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("indexer: read: %w", err)
		}

		var event productEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			l.Warn("indexer_skip_message", "reason", "bad payload", "error", err)
			continue
		}

		if err := ix.apply(ctx, event); err != nil {
			l.Error("indexer_apply_failed", "type", event.Type, "product_id", event.ProductID, "error", err)
		}
	}
}

func (ix *Indexer) apply(ctx context.Context, event productEvent) error {
	docID := strconv.Itoa(event.ProductID)

	switch event.Type {
	case "product_created", "product_updated":
		doc := map[string]any{
			"id":          event.ProductID,
			"name":        event.Name,
			"description": event.Description,
			"price":       event.Price,
			"stock":       event.Stock,
		}
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return err
		}
		res, err := ix.ES.Index(ix.Index, &buf,
			ix.ES.Index.WithDocumentID(docID),
			ix.ES.Index.WithContext(ctx),
		)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index %s: %s", docID, res.Status())
		}
		return nil

	case "product_deleted":
		res, err := ix.ES.Delete(ix.Index, docID, ix.ES.Delete.WithContext(ctx))
		if err != nil {
			return err
		}
		defer res.Body.Close()
		// 404 just means the document was never indexed.
		if res.IsError() && res.StatusCode != 404 {
			return fmt.Errorf("delete %s: %s", docID, res.Status())
		}
		return nil
	}

	return nil
}

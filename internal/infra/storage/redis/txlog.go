package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/tokensend/internal/sendflow"
)

// txlogKey is the Redis list holding the transaction log, oldest first.
const txlogKey = "txlog:transactions"

// AppendTransaction pushes record to the tail of the log.
func (c *client) AppendTransaction(ctx context.Context, record sendflow.TransactionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.conn.RPush(ctx, c.key(txlogKey), data).Err()
}

// ListTransactions returns every record in append order.
func (c *client) ListTransactions(ctx context.Context) ([]sendflow.TransactionRecord, error) {
	entries, err := c.conn.LRange(ctx, c.key(txlogKey), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]sendflow.TransactionRecord, 0, len(entries))
	for i, entry := range entries {
		var record sendflow.TransactionRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("decode transaction log entry %d: %w", i, err)
		}
		records = append(records, record)
	}

	return records, nil
}

var _ sendflow.TransactionLog = new(client)

package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/tokensend/internal/sendflow"

	"github.com/shopspring/decimal"
)

// balanceKeyPrefix is the Redis key namespace of balance records.
const balanceKeyPrefix = "balance"

const (
	balanceFieldToken = "token"
	balanceFieldFiat  = "fiat"
)

// balanceKey returns the Redis key of the balance record of an account.
//
// Format: "balance:{alias}"
func balanceKey(alias string) string {
	return fmt.Sprintf("%s:%s", balanceKeyPrefix, alias)
}

// SetBalance stores record as a hash, overwriting the previous one.
func (c *client) SetBalance(ctx context.Context, record sendflow.BalanceRecord) error {
	return c.conn.HSet(ctx, c.key(balanceKey(record.Alias)),
		balanceFieldToken, record.Token.String(),
		balanceFieldFiat, record.Fiat.String(),
	).Err()
}

// Balance loads the balance record of alias. It returns
// sendflow.ErrRecordNotFound when none was stored.
func (c *client) Balance(ctx context.Context, alias string) (sendflow.BalanceRecord, error) {
	fields, err := c.conn.HGetAll(ctx, c.key(balanceKey(alias))).Result()
	if err != nil {
		return sendflow.BalanceRecord{}, err
	}

	if len(fields) == 0 {
		return sendflow.BalanceRecord{}, sendflow.ErrRecordNotFound
	}

	tokenAmount, err := decimal.NewFromString(fields[balanceFieldToken])
	if err != nil {
		return sendflow.BalanceRecord{}, fmt.Errorf("decode token balance of %s: %w", alias, err)
	}

	fiat, err := decimal.NewFromString(fields[balanceFieldFiat])
	if err != nil {
		return sendflow.BalanceRecord{}, fmt.Errorf("decode fiat balance of %s: %w", alias, err)
	}

	return sendflow.BalanceRecord{Alias: alias, Token: tokenAmount, Fiat: fiat}, nil
}

var _ sendflow.BalanceStore = new(client)

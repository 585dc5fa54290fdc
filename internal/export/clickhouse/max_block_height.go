package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
)

// MaxBlockHeight returns the maximum exported block height for a network.
// Zero means nothing is exported yet.
func (r *Repository) MaxBlockHeight(ctx context.Context, network model.Network) (int32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_height", network, err, start)
	}()

	const query = `
SELECT coalesce(max(height), toInt32(0)) AS max_height
FROM bsq_blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var height int32
	if !rows.Next() {
		return 0, fmt.Errorf("max block height not found")
	}

	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, nil
}

package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const blockTimeout = 5 * time.Second

// DLQEntry preserves a failed job with enough context to replay it by hand.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	Payload  json.RawMessage `json:"payload"`
	Erro     string          `json:"erro"`
	FalhouEm time.Time       `json:"falhou_em"`
}

func sendToDLQ(ctx context.Context, rdb *redis.Client, queue string, payload []byte, cause error) error {
	entry := DLQEntry{
		Queue:    queue,
		Payload:  payload,
		Erro:     cause.Error(),
		FalhouEm: time.Now(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, QueueDLQ, raw).Err()
}

// DLQSize reports how many failed jobs are waiting. Exposed by the
// health endpoint.
func DLQSize(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, QueueDLQ).Result()
}

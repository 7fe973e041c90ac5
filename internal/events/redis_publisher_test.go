package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"trait-match/internal/domain"
)

type mockStreamer struct {
	lastArgs *redis.XAddArgs
	xaddErr  error
	pingErr  error
	pings    int
}

func (m *mockStreamer) XAdd(ctx context.Context, args *redis.XAddArgs) *redis.StringCmd {
	m.lastArgs = args
	cmd := redis.NewStringCmd(ctx)
	if m.xaddErr != nil {
		cmd.SetErr(m.xaddErr)
		return cmd
	}
	cmd.SetVal("1-1")
	return cmd
}

func (m *mockStreamer) Ping(ctx context.Context) *redis.StatusCmd {
	m.pings++
	cmd := redis.NewStatusCmd(ctx)
	if m.pingErr != nil {
		cmd.SetErr(m.pingErr)
		return cmd
	}
	cmd.SetVal("PONG")
	return cmd
}

func TestRedisPublisherPublish(t *testing.T) {
	streamer := &mockStreamer{}
	publisher := &RedisPublisher{client: streamer}

	event := MatchingCompleted{
		MatchingID: "match-1",
		Teams:      []domain.TeamReport{{TeamIndex: 1, MemberIDs: []string{"a", "b"}}},
		Timestamp:  "2025-03-01T12:00:00+09:00",
	}
	if err := publisher.Publish(context.Background(), "team_matching_results", event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if streamer.lastArgs == nil || streamer.lastArgs.Stream != "team_matching_results" {
		t.Fatalf("unexpected stream args %+v", streamer.lastArgs)
	}
	payload, ok := streamer.lastArgs.Values.(map[string]interface{})["payload"].([]byte)
	if !ok {
		t.Fatal("payload missing from stream values")
	}

	var decoded MatchingCompleted
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.MatchingID != "match-1" || len(decoded.Teams) != 1 {
		t.Fatalf("unexpected payload %+v", decoded)
	}
}

func TestRedisPublisherErrors(t *testing.T) {
	streamer := &mockStreamer{xaddErr: errors.New("xadd failed"), pingErr: errors.New("ping failed")}
	publisher := &RedisPublisher{client: streamer}

	if err := publisher.Publish(context.Background(), "topic", MatchingCompleted{}); err == nil {
		t.Fatal("expected publish error")
	}
	if err := publisher.Flush(context.Background()); err == nil {
		t.Fatal("expected flush error")
	}
	if streamer.pings != 1 {
		t.Fatalf("expected one ping, got %d", streamer.pings)
	}
}

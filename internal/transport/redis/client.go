package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Client publishes game states for external renderers. It never reads moves back.
type Client struct {
	client  *redis.Client
	channel string
}

func New(client *redis.Client, channel string) *Client {
	return &Client{
		client:  client,
		channel: channel,
	}
}

// Channel - returns the pub/sub channel for a game, e.g. "tictactoe:<id>".
func (that *Client) Channel(gameID string) string {
	return that.channel + ":" + gameID
}

// Publish - sends the state as JSON on the game's channel.
func (that *Client) Publish(ctx context.Context, state *entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err = that.client.Publish(ctx, that.Channel(state.ID), stateJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game state: %w", err)
	}

	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	offersTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, offersTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		offersTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, offersTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, offersTTL: offersTTL}
}

// GetOffers returns nil, nil on a cache miss.
func (c *RedisCache) GetOffers(ctx context.Context) ([]domain.TravelOffer, error) {
	data, err := c.client.Get(ctx, offersKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var offers []domain.TravelOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *RedisCache) SetOffers(ctx context.Context, offers []domain.TravelOffer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, offersKey(), payload, c.offersTTL).Err()
}

func (c *RedisCache) InvalidateOffers(ctx context.Context) error {
	return c.client.Del(ctx, offersKey()).Err()
}

func (c *RedisCache) GetOffer(ctx context.Context, id int64) (*domain.TravelOffer, error) {
	data, err := c.client.Get(ctx, offerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var offer domain.TravelOffer
	if err := json.Unmarshal(data, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (c *RedisCache) SetOffer(ctx context.Context, offer *domain.TravelOffer) error {
	payload, err := json.Marshal(offer)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, offerKey(offer.ID), payload, c.offersTTL).Err()
}

func (c *RedisCache) InvalidateOffer(ctx context.Context, id int64) error {
	return c.client.Del(ctx, offerKey(id), offersKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func offersKey() string {
	return "cache:travel_offers"
}

func offerKey(id int64) string {
	return fmt.Sprintf("cache:travel_offer:%d", id)
}

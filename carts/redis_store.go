package carts

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"loja-virtual/models"
)

const cartIDSessionKey = "cart_id"

// RedisStore keeps cart contents server-side under cart:<id>, leaving only a
// random cart id in the session cookie. Entries expire after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) cartID(c *gin.Context, create bool) (string, error) {
	session := sessions.Default(c)
	if id, ok := session.Get(cartIDSessionKey).(string); ok && id != "" {
		return id, nil
	}
	if !create {
		return "", nil
	}
	id := uuid.New().String()
	session.Set(cartIDSessionKey, id)
	if err := session.Save(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Load(c *gin.Context) models.Cart {
	id, _ := s.cartID(c, false)
	if id == "" {
		return models.Cart{}
	}
	raw, err := s.client.Get(c.Request.Context(), "cart:"+id).Result()
	if err != nil {
		return models.Cart{}
	}
	return models.DecodeCart(raw)
}

func (s *RedisStore) Save(c *gin.Context, cart models.Cart) error {
	id, err := s.cartID(c, true)
	if err != nil {
		return err
	}
	return s.client.Set(c.Request.Context(), "cart:"+id, cart.Encode(), s.ttl).Err()
}

func (s *RedisStore) Clear(c *gin.Context) error {
	id, _ := s.cartID(c, false)
	if id == "" {
		return nil
	}
	return s.client.Del(c.Request.Context(), "cart:"+id).Err()
}

package carts

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"loja-virtual/models"
)

const cartSessionKey = "cart"

// Store keeps exactly one cart per browser session.
type Store interface {
	Load(c *gin.Context) models.Cart
	Save(c *gin.Context, cart models.Cart) error
	Clear(c *gin.Context) error
}

// SessionStore serializes the whole cart into the session cookie. It is the
// default backend when Redis is not configured.
type SessionStore struct{}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(c *gin.Context) models.Cart {
	session := sessions.Default(c)
	raw, _ := session.Get(cartSessionKey).(string)
	return models.DecodeCart(raw)
}

func (s *SessionStore) Save(c *gin.Context, cart models.Cart) error {
	session := sessions.Default(c)
	session.Set(cartSessionKey, cart.Encode())
	return session.Save()
}

func (s *SessionStore) Clear(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(cartSessionKey)
	return session.Save()
}

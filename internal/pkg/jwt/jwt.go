package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vetcare/chat-service/internal/model"
)

const defaultTTL = 30 * time.Minute

// Generator signs the Centrifugo connect and subscribe tokens handed to chat clients.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    defaultTTL,
	}
}

func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := model.CentrifugoConnectClaims{
		RegisteredClaims: registered(userID, now, expiresAt),
	}

	tokenString, err := g.sign(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// GenerateSubscribeToken grants userID access to the thread's channel only.
func (g *Generator) GenerateSubscribeToken(userID, threadID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := model.CentrifugoSubscribeClaims{
		RegisteredClaims: registered(userID, now, expiresAt),
		Channel:          model.ThreadChannel(threadID),
		UserID:           userID,
		ThreadID:         threadID,
	}

	tokenString, err := g.sign(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error) {
	claims := &model.CentrifugoConnectClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}
	return claims, nil
}

func (g *Generator) ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error) {
	claims := &model.CentrifugoSubscribeClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse subscribe JWT token: %w", err)
	}
	return claims, nil
}

func registered(subject string, now, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (g *Generator) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

func (g *Generator) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string  `json:"channel"`
	Data    Message `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID   string `json:"user_id"`
	ThreadID string `json:"thread_id"`
}

// ThreadChannel is the Centrifugo channel a thread's messages are published to.
func ThreadChannel(threadID string) string {
	return "thread:" + threadID
}

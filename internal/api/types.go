// Package api holds the HTTP contract of the chat service: wire types and route binding.
package api

type Error struct {
	Error string `json:"error"`
}

type RequestChatRequest struct {
	VetId string `json:"vet_id" validate:"required,uuid"`
}

type RequestChatResponse struct {
	ThreadId string `json:"thread_id"`
}

type AcceptRequestResponse struct {
	WindowFrom *string `json:"window_from,omitempty"`
	WindowTo   *string `json:"window_to,omitempty"`
}

type DeclineRequestResponse struct {
	Status string `json:"status"`
}

type StartChatRequest struct {
	OwnerId string  `json:"owner_id" validate:"required,uuid"`
	Text    *string `json:"text,omitempty" validate:"omitempty,max=2000"`
}

type StartChatResponse struct {
	ThreadId string `json:"thread_id"`
}

type Thread struct {
	Id              string  `json:"id"`
	VetId           string  `json:"vet_id"`
	OwnerId         string  `json:"owner_id"`
	InitiatedBy     string  `json:"initiated_by"`
	CounterpartName string  `json:"counterpart_name"`
	Status          string  `json:"status"`
	CanSend         bool    `json:"can_send"`
	WindowTo        *string `json:"window_to,omitempty"`
	LastMessageAt   *string `json:"last_message_at,omitempty"`
	UpdatedAt       string  `json:"updated_at"`
}

type GetThreadsResponse struct {
	Threads []Thread `json:"threads"`
}

type Message struct {
	Id           string  `json:"id"`
	ThreadId     string  `json:"thread_id"`
	AuthorRole   string  `json:"author_role"`
	AuthorUserId *string `json:"author_user_id,omitempty"`
	Text         string  `json:"text"`
	Kind         string  `json:"kind"`
	SentAt       string  `json:"sent_at"`
}

type GetThreadMessagesParams struct {
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Before *string `form:"before,omitempty" json:"before,omitempty"`
}

type GetThreadMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type SendMessageResponse struct {
	Message Message `json:"message"`
}

type GetConnectAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetThreadSubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}

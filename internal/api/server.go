package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is implemented by the REST handler.
type ServerInterface interface {
	// (POST /api/chat/requests)
	RequestChat(w http.ResponseWriter, r *http.Request)
	// (GET /api/chat/threads)
	GetThreads(w http.ResponseWriter, r *http.Request)
	// (POST /api/chat/threads)
	StartChat(w http.ResponseWriter, r *http.Request)
	// (POST /api/chat/threads/{thread_id}/accept)
	AcceptRequest(w http.ResponseWriter, r *http.Request, threadId string)
	// (POST /api/chat/threads/{thread_id}/decline)
	DeclineRequest(w http.ResponseWriter, r *http.Request, threadId string)
	// (GET /api/chat/threads/{thread_id}/messages)
	GetThreadMessages(w http.ResponseWriter, r *http.Request, threadId string, params GetThreadMessagesParams)
	// (POST /api/chat/threads/{thread_id}/messages)
	SendMessage(w http.ResponseWriter, r *http.Request, threadId string)
	// (GET /api/chat/threads/{thread_id}/token)
	GetThreadSubscribeToken(w http.ResponseWriter, r *http.Request, threadId string)
	// (GET /api/chat/token)
	GetConnectAccessToken(w http.ResponseWriter, r *http.Request)
}

type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) threadID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var threadId string

	err := runtime.BindStyledParameterWithOptions("simple", "thread_id", chi.URLParam(r, "thread_id"), &threadId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "thread_id", Err: err})
		return "", false
	}

	return threadId, true
}

func (siw *ServerInterfaceWrapper) RequestChat(w http.ResponseWriter, r *http.Request) {
	siw.Handler.RequestChat(w, r)
}

func (siw *ServerInterfaceWrapper) GetThreads(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetThreads(w, r)
}

func (siw *ServerInterfaceWrapper) StartChat(w http.ResponseWriter, r *http.Request) {
	siw.Handler.StartChat(w, r)
}

func (siw *ServerInterfaceWrapper) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	threadId, ok := siw.threadID(w, r)
	if !ok {
		return
	}
	siw.Handler.AcceptRequest(w, r, threadId)
}

func (siw *ServerInterfaceWrapper) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	threadId, ok := siw.threadID(w, r)
	if !ok {
		return
	}
	siw.Handler.DeclineRequest(w, r, threadId)
}

func (siw *ServerInterfaceWrapper) GetThreadMessages(w http.ResponseWriter, r *http.Request) {
	threadId, ok := siw.threadID(w, r)
	if !ok {
		return
	}

	var params GetThreadMessagesParams

	err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "before", r.URL.Query(), &params.Before)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "before", Err: err})
		return
	}

	siw.Handler.GetThreadMessages(w, r, threadId, params)
}

func (siw *ServerInterfaceWrapper) SendMessage(w http.ResponseWriter, r *http.Request) {
	threadId, ok := siw.threadID(w, r)
	if !ok {
		return
	}
	siw.Handler.SendMessage(w, r, threadId)
}

func (siw *ServerInterfaceWrapper) GetThreadSubscribeToken(w http.ResponseWriter, r *http.Request) {
	threadId, ok := siw.threadID(w, r)
	if !ok {
		return
	}
	siw.Handler.GetThreadSubscribeToken(w, r, threadId)
}

func (siw *ServerInterfaceWrapper) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetConnectAccessToken(w, r)
}

// HandlerFromMux registers every route of si on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: writeParamError,
	}

	r.Group(func(r chi.Router) {
		r.Post("/api/chat/requests", wrapper.RequestChat)
		r.Get("/api/chat/threads", wrapper.GetThreads)
		r.Post("/api/chat/threads", wrapper.StartChat)
		r.Post("/api/chat/threads/{thread_id}/accept", wrapper.AcceptRequest)
		r.Post("/api/chat/threads/{thread_id}/decline", wrapper.DeclineRequest)
		r.Get("/api/chat/threads/{thread_id}/messages", wrapper.GetThreadMessages)
		r.Post("/api/chat/threads/{thread_id}/messages", wrapper.SendMessage)
		r.Get("/api/chat/threads/{thread_id}/token", wrapper.GetThreadSubscribeToken)
		r.Get("/api/chat/token", wrapper.GetConnectAccessToken)
	})

	return r
}

func writeParamError(w http.ResponseWriter, _ *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(Error{Error: err.Error()})
}

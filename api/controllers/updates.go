// Package controllers holds the HTTP handlers the router mounts.
package controllers

import (
	"context"
	"net/http"

	"github.com/retailops/shiftbot/api/responses"
	"github.com/retailops/shiftbot/api/validators"
	"github.com/retailops/shiftbot/internal/bot"
	"github.com/retailops/shiftbot/pkg/logger"
)

// Dispatcher routes one decoded update to completion.
type Dispatcher interface {
	Dispatch(ctx context.Context, upd bot.Update) error
}

// Updates handles the chat platform's webhook callbacks.
type Updates struct {
	dispatcher Dispatcher
	logger     *logger.Logger
}

func NewUpdates(dispatcher Dispatcher, logg *logger.Logger) *Updates {
	return &Updates{dispatcher: dispatcher, logger: logg}
}

// Handle decodes, validates, and dispatches one update. Malformed payloads
// get a 400 so the platform can drop them; dispatch failures are logged and
// acked with 200 so the platform does not retry a write that already failed
// once and will fail again.
func (u *Updates) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd bot.Update
	if err := validators.DecodeJSONBody(r, &upd); err != nil {
		responses.WriteError(ctx, u.logger, w, err)
		return
	}

	if err := u.dispatcher.Dispatch(ctx, upd); err != nil {
		u.logger.Error(ctx, "update dispatch failed", err)
	}
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

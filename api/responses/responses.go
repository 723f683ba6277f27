package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/retailops/shiftbot/pkg/logger"
	"github.com/retailops/shiftbot/pkg/types"
)

var httpStatusByCode = map[pkgerrors.Code]int{
	pkgerrors.CodeValidation:    http.StatusBadRequest,
	pkgerrors.CodeForbidden:     http.StatusForbidden,
	pkgerrors.CodeNotFound:      http.StatusNotFound,
	pkgerrors.CodeConflict:      http.StatusConflict,
	pkgerrors.CodeStateConflict: http.StatusUnprocessableEntity,
	pkgerrors.CodeInternal:      http.StatusInternalServerError,
	pkgerrors.CodeDependency:    http.StatusBadGateway,
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.SuccessEnvelope{Data: data})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	msg := meta.UserMessage
	if meta.Recoverable && typed.Message() != "" {
		msg = typed.Message()
	}

	payload := types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}
	if meta.Recoverable {
		if details := typed.Details(); details != nil {
			payload.Error.Details = details
		}
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"error_code":  typed.Code(),
			"error_chain": pkgerrors.Chain(err),
		})
		logg.Error(ctx, "request.error", err)
	}

	status, ok := httpStatusByCode[typed.Code()]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

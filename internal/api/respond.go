package api

import (
	"errors"
	"net/http"

	"soyhub-be/internal/announcement"
	"soyhub-be/internal/cart"
	"soyhub-be/internal/logger"
	"soyhub-be/internal/order"
	"soyhub-be/internal/product"
	"soyhub-be/internal/user"
	"soyhub-be/internal/utils"

	"go.uber.org/zap"
)

// writeError maps domain sentinel errors to HTTP status codes. Anything
// unrecognized is a 500 and gets logged with the request id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, user.ErrInvalidContact),
		errors.Is(err, user.ErrInvalidCampus),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidDeliveryOption),
		errors.Is(err, announcement.ErrNoFieldsToUpdate):
		code = http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, product.ErrUnauthorized),
		errors.Is(err, order.ErrUnauthorized),
		errors.Is(err, announcement.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, announcement.ErrAnnouncementNotFound):
		code = http.StatusNotFound
	case errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, cart.ErrProductUnavailable),
		errors.Is(err, product.ErrProductUnavailable):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", code)
		return
	}

	utils.WriteJSONError(w, err.Error(), code)
}

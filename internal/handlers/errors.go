package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"polar-backend/internal/middleware"
	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/pkg/utils"
)

// writeStoreError maps store sentinel errors to HTTP statuses
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateID):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUnknownFlight), errors.Is(err, store.ErrInvalid):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// actorFrom returns the acting user set by the auth middleware; it answers 401 when absent
func actorFrom(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
	}
	return actor, ok
}

// writeAttachment sends data as a download; non-ASCII names go in filename*
func writeAttachment(w http.ResponseWriter, contentType, filename, fallback string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", fallback, url.PathEscape(filename)))
	w.Write(data)
}

package handlers

import (
	"net/http"
	"strconv"

	"orderdesk/app/services"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// NewRender builds the JSON renderer shared by all handlers.
func NewRender() *render.Render {
	return render.New(render.Options{IndentJSON: true})
}

func parseID(r *http.Request, key string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// writeEnvelope maps a service envelope onto the transport contract:
// NotFound 404, BadRequest 400, Conflict 409, Error 500, Success the
// operation-specific code (201 with Location for creates, 204 otherwise).
func writeEnvelope(rnd *render.Render, w http.ResponseWriter, resp services.ServiceResponse, successCode int, location string) {
	switch resp.Status {
	case services.StatusNotFound:
		rnd.JSON(w, http.StatusNotFound, resp.Messages)
	case services.StatusBadRequest:
		rnd.JSON(w, http.StatusBadRequest, resp.Messages)
	case services.StatusConflict:
		rnd.JSON(w, http.StatusConflict, resp.Messages)
	case services.StatusError:
		rnd.JSON(w, http.StatusInternalServerError, resp.Messages)
	default:
		if location != "" {
			w.Header().Set("Location", location)
		}
		if successCode == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		rnd.JSON(w, successCode, resp)
	}
}

package services

import (
	"encoding/json"
	"log"
)

// ServiceStatus classifies the outcome of a mutating service operation so
// the boundary layer can pick a transport code without inspecting errors.
type ServiceStatus int

const (
	StatusSuccess ServiceStatus = iota
	StatusNotFound
	StatusBadRequest
	StatusConflict
	StatusError
)

func (s ServiceStatus) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusNotFound:
		return "NotFound"
	case StatusBadRequest:
		return "BadRequest"
	case StatusConflict:
		return "Conflict"
	default:
		return "Error"
	}
}

// MarshalJSON renders the status by name so envelope bodies stay readable
// without the enum's numbering.
func (s ServiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ServiceResponse is the uniform envelope returned by every mutating
// service operation. CreatedID carries the store-assigned id after an Add.
type ServiceResponse struct {
	Status    ServiceStatus `json:"status"`
	Messages  []string      `json:"messages,omitempty"`
	CreatedID uint          `json:"created_id,omitempty"`
}

func success() ServiceResponse {
	return ServiceResponse{Status: StatusSuccess}
}

func created(id uint) ServiceResponse {
	return ServiceResponse{Status: StatusSuccess, CreatedID: id}
}

func notFound(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusNotFound, Messages: messages}
}

func badRequest(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusBadRequest, Messages: messages}
}

func conflict(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusConflict, Messages: messages}
}

// storeError logs the underlying failure and returns a non-leaking message.
func storeError(op string, err error) ServiceResponse {
	log.Printf("%s: %v", op, err)
	return ServiceResponse{Status: StatusError, Messages: []string{"unexpected error while " + op}}
}

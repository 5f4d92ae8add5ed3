package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"orderdesk/app/middlewares"
	"orderdesk/app/models"
	"orderdesk/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	svc      services.OrderService
	render   *render.Render
	validate *validator.Validate
}

func NewOrderHandler(svc services.OrderService, rnd *render.Render, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{svc: svc, render: rnd, validate: validate}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("OrderHandler.List: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *OrderHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	dto, err := h.svc.Find(r.Context(), id)
	if err != nil {
		log.Printf("OrderHandler.Find: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	if dto == nil {
		h.render.JSON(w, http.StatusNotFound, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dto)
}

func (h *OrderHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseID(r, "customerId")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	dtos, err := h.svc.ListForCustomer(r.Context(), customerID)
	if err != nil {
		log.Printf("OrderHandler.ListForCustomer: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *OrderHandler) Add(w http.ResponseWriter, r *http.Request) {
	var dto models.OrderDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.svc.Add(r.Context(), dto)
	writeEnvelope(h.render, w, resp, http.StatusCreated, fmt.Sprintf("/api/orders/%d", resp.CreatedID))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var dto models.OrderDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	writeEnvelope(h.render, w, h.svc.Update(r.Context(), id, dto), http.StatusNoContent, "")
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order id")
		return
	}
	writeEnvelope(h.render, w, h.svc.Delete(r.Context(), id), http.StatusNoContent, "")
}

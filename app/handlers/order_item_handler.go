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

type OrderItemHandler struct {
	svc      services.OrderItemService
	render   *render.Render
	validate *validator.Validate
}

func NewOrderItemHandler(svc services.OrderItemService, rnd *render.Render, validate *validator.Validate) *OrderItemHandler {
	return &OrderItemHandler{svc: svc, render: rnd, validate: validate}
}

func (h *OrderItemHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("OrderItemHandler.List: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *OrderItemHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	dto, err := h.svc.Find(r.Context(), id)
	if err != nil {
		log.Printf("OrderItemHandler.Find: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	if dto == nil {
		h.render.JSON(w, http.StatusNotFound, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dto)
}

func (h *OrderItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var dto models.OrderItemDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.svc.Add(r.Context(), dto)
	writeEnvelope(h.render, w, resp, http.StatusCreated, fmt.Sprintf("/api/order-items/%d", resp.CreatedID))
}

func (h *OrderItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	var dto models.OrderItemDto
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

func (h *OrderItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid order item id")
		return
	}
	writeEnvelope(h.render, w, h.svc.Delete(r.Context(), id), http.StatusNoContent, "")
}

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

type ProductHandler struct {
	svc      services.ProductService
	render   *render.Render
	validate *validator.Validate
}

func NewProductHandler(svc services.ProductService, rnd *render.Render, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{svc: svc, render: rnd, validate: validate}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("ProductHandler.List: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *ProductHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	dto, err := h.svc.Find(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Find: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	if dto == nil {
		h.render.JSON(w, http.StatusNotFound, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dto)
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var dto models.ProductDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.svc.Add(r.Context(), dto)
	writeEnvelope(h.render, w, resp, http.StatusCreated, fmt.Sprintf("/api/products/%d", resp.CreatedID))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var dto models.ProductDto
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

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid product id")
		return
	}
	writeEnvelope(h.render, w, h.svc.Delete(r.Context(), id), http.StatusNoContent, "")
}

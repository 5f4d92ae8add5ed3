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

type CategoryHandler struct {
	svc      services.CategoryService
	render   *render.Render
	validate *validator.Validate
}

func NewCategoryHandler(svc services.CategoryService, rnd *render.Render, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{svc: svc, render: rnd, validate: validate}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *CategoryHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	dto, err := h.svc.Find(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Find: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	if dto == nil {
		h.render.JSON(w, http.StatusNotFound, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dto)
}

func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var dto models.CategoryDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		h.render.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.svc.Add(r.Context(), dto)
	writeEnvelope(h.render, w, resp, http.StatusCreated, fmt.Sprintf("/api/categories/%d", resp.CreatedID))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var dto models.CategoryDto
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

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid category id")
		return
	}
	writeEnvelope(h.render, w, h.svc.Delete(r.Context(), id), http.StatusNoContent, "")
}

func (h *CategoryHandler) ListForProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseID(r, "productId")
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	dtos, err := h.svc.ListForProduct(r.Context(), productID)
	if err != nil {
		log.Printf("CategoryHandler.ListForProduct: [%s] %v", middlewares.RequestID(r.Context()), err)
		h.render.JSON(w, http.StatusInternalServerError, nil)
		return
	}
	h.render.JSON(w, http.StatusOK, dtos)
}

func (h *CategoryHandler) Link(w http.ResponseWriter, r *http.Request) {
	categoryID, okC := parseID(r, "categoryId")
	productID, okP := parseID(r, "productId")
	if !okC || !okP {
		h.render.JSON(w, http.StatusBadRequest, "invalid category or product id")
		return
	}
	writeEnvelope(h.render, w, h.svc.LinkToProduct(r.Context(), categoryID, productID), http.StatusNoContent, "")
}

func (h *CategoryHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	categoryID, okC := parseID(r, "categoryId")
	productID, okP := parseID(r, "productId")
	if !okC || !okP {
		h.render.JSON(w, http.StatusBadRequest, "invalid category or product id")
		return
	}
	writeEnvelope(h.render, w, h.svc.UnlinkFromProduct(r.Context(), categoryID, productID), http.StatusNoContent, "")
}

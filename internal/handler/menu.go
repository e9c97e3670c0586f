package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/internal/middleware"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type MenuCatalog interface {
	ListMenu(ctx context.Context, filter entities.MenuFilter) ([]entities.MenuItem, error)
	CreateMenuItem(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type MenuHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          MenuCatalog
	authenticate func(http.Handler) http.Handler
}

func NewMenuHandler(logger *slog.Logger, svc MenuCatalog, authenticate func(http.Handler) http.Handler) *MenuHandler {
	return &MenuHandler{
		logger:       logger.With(slog.String("handler", "menu")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *MenuHandler) Init(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate, middleware.RequireAdmin)
			r.Post("/", h.Create)
			r.Put("/{item_id}", h.Update)
			r.Delete("/{item_id}", h.Delete)
		})
	})
}

// List returns menu items, optionally filtered.
// @Summary      List menu
// @Tags         menu
// @Param        search  query  string  false  "Name substring, case-insensitive"
// @Param        type    query  string  false  "Item type"
// @Success      200  {array}   MenuItem
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /menu [get]
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := entities.MenuFilter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
	}

	items, err := h.svc.ListMenu(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list menu", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]MenuItem, 0, len(items))
	for _, item := range items {
		result = append(result, MenuItemEntityToJSON(item))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// Create adds a menu item. Administrator only.
// @Summary      Add menu item
// @Tags         menu
// @Accept       json
// @Param        request body MenuItemRequest true "Menu item"
// @Success      201  {object}  MenuItem
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /menu [post]
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MenuItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.CreateMenuItem(ctx, entities.MenuItem{
		Name:  req.Name,
		Img:   req.Img,
		Price: req.Price,
		Type:  req.Type,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create menu item", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, MenuItemEntityToJSON(item), http.StatusCreated)
}

// Update replaces a menu item. Administrator only.
// @Summary      Update menu item
// @Tags         menu
// @Accept       json
// @Param        item_id  path  string           true  "Menu item id"
// @Param        request  body  MenuItemRequest  true  "Menu item"
// @Success      200  {object}  MenuItem
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /menu/{item_id} [put]
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "item_id")

	var req MenuItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.UpdateMenuItem(ctx, entities.MenuItem{
		ID:    itemID,
		Name:  req.Name,
		Img:   req.Img,
		Price: req.Price,
		Type:  req.Type,
	})
	if errors.Is(err, entities.ErrMenuItemNotFound) {
		utils.WriteError(w, "menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update menu item", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, MenuItemEntityToJSON(item), http.StatusOK)
}

// Delete removes a menu item. Administrator only.
// @Summary      Delete menu item
// @Tags         menu
// @Param        item_id  path  string  true  "Menu item id"
// @Success      200  {object}  utils.MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /menu/{item_id} [delete]
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "item_id")

	err := h.svc.DeleteMenuItem(ctx, itemID)
	if errors.Is(err, entities.ErrMenuItemNotFound) {
		utils.WriteError(w, "menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete menu item", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, "menu item deleted successfully", http.StatusOK)
}

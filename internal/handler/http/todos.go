package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todos, err := h.services.TodoService.ListTodos(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	createdTodo, err := h.services.TodoService.CreateTodo(ctx, userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdTodo, http.StatusCreated)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteError(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.GetTodo(ctx, userID, todoID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteError(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	var update models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	updatedTodo, err := h.services.TodoService.UpdateTodo(ctx, userID, todoID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedTodo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteError(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, userID, todoID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Todo deleted successfully"}, http.StatusOK)
}

// todoIDFromURL parses the {todoID} URL parameter of the todo item routes.
func todoIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "todoID"), 10, 64)
}

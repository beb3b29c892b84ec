// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/internal/utils"
	"github.com/dfcastellanos/clientes-api/models"
)

func (h *Handler) createCliente(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var cliente models.Cliente
	if err := json.NewDecoder(r.Body).Decode(&cliente); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ClienteService.Create(ctx, cliente)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid cliente payload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrClienteAlreadyExists):
			log.Err(err).Int64("id", cliente.ID).Msg("cliente already exists")
			http.Error(w, "cliente already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during cliente creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCliente(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := clienteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid cliente id")
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}

	cliente, err := h.services.ClienteService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrClienteNotFound) {
			http.Error(w, "cliente not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("failed to load cliente")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, cliente, http.StatusOK)
}

func (h *Handler) getAllClientes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientes, err := h.services.ClienteService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list clientes")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, clientes, http.StatusOK)
}

func (h *Handler) updateCliente(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := clienteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid cliente id")
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}

	var patch models.ClienteUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ClienteService.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrClienteNotFound):
			http.Error(w, "cliente not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Int64("id", id).Msg("email conflict on update")
			http.Error(w, "email already registered", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid cliente patch")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during cliente update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCliente(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := clienteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid cliente id")
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}

	if err := h.services.ClienteService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrClienteNotFound):
			http.Error(w, "cliente not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrClienteHasOrdenes):
			log.Err(err).Int64("id", id).Msg("delete blocked by ordenes")
			http.Error(w, "cliente has ordenes and cannot be deleted", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during cliente deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchClientes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	page, err := queryInt(query.Get("page"), 1)
	if err != nil {
		http.Error(w, "page must be an integer", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(query.Get("limit"), 10)
	if err != nil {
		http.Error(w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	clientes, total, err := h.services.ClienteService.Search(
		ctx, query.Get("q"), query.Get("sort"), query.Get("order"), page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSearchParams) {
			log.Err(err).Msg("invalid search parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("cliente search failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	header := w.Header()
	header.Set("X-Total-Count", strconv.Itoa(total))
	header.Set("X-Page", strconv.Itoa(page))
	header.Set("X-Per-Page", strconv.Itoa(limit))
	header.Set("X-Total-Pages", strconv.Itoa(totalPages))

	utils.WriteJSON(w, clientes, http.StatusOK)
}

func clienteIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

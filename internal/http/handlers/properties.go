package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yuvrajghadi/thakkar-backend/internal/cache"
	"github.com/yuvrajghadi/thakkar-backend/internal/config"
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/property"
)

type PropertiesRepo interface {
	Create(ctx context.Context, doc property.Document) (string, error)
	List(ctx context.Context) ([]property.Document, error)
	GetByID(ctx context.Context, id string) (property.Document, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

const cacheKeyProperties = "cache:properties:list"

type PropertiesHandler struct {
	repo  PropertiesRepo
	cache *cache.Client // nil disables caching
}

func NewPropertiesHandler(repo PropertiesRepo, cacheClient *cache.Client) *PropertiesHandler {
	return &PropertiesHandler{
		repo:  repo,
		cache: cacheClient,
	}
}

// Create stores whatever document the admin dashboard sends. Listings
// are schemaless on purpose; only the creation timestamp and identifier
// are server-owned.
func (h *PropertiesHandler) Create(ctx *gin.Context) {
	var payload map[string]interface{}

	if !BindJSON(ctx, &payload, "Invalid request body") {
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	id, err := h.repo.Create(cctx, property.NewFromPayload(payload))

	if err != nil {
		RespondCreateFailure(ctx, "Failed to save property", err)
		return
	}

	h.invalidate(cctx)

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Property saved successfully",
		"id":      id,
	})
}

func (h *PropertiesHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	if h.cache != nil {
		if raw, ok := h.cache.GetJSON(cctx, cacheKeyProperties); ok {
			var docs []property.Document

			if json.Unmarshal(raw, &docs) == nil {
				ctx.JSON(http.StatusOK, gin.H{
					"success": true,
					"count":   len(docs),
					"data":    docs,
				})
				return
			}
		}
	}

	docs, err := h.repo.List(cctx)

	if err != nil {
		RespondStoreFailure(ctx, "Failed to fetch properties", err)
		return
	}

	if h.cache != nil {
		h.cache.SetJSON(cctx, cacheKeyProperties, docs)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(docs),
		"data":    docs,
	})
}

func (h *PropertiesHandler) GetByID(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	doc, err := h.repo.GetByID(cctx, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			RespondError(ctx, http.StatusNotFound, "Property not found")
			return
		}

		// A malformed identifier and any other lookup failure both
		// surface as a bad id, matching the production API.
		RespondError(ctx, http.StatusBadRequest, "Invalid property ID")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// Update merges the submitted fields into the stored document. The
// identifier and creation timestamp cannot be rewritten.
func (h *PropertiesHandler) Update(ctx *gin.Context) {
	var payload map[string]interface{}

	if !BindJSON(ctx, &payload, "Invalid request body") {
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	err := h.repo.Update(cctx, ctx.Param("id"), property.UpdateFields(payload))

	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			RespondError(ctx, http.StatusNotFound, "Property not found")
			return
		}

		RespondStoreFailure(ctx, "Failed to update property", err)
		return
	}

	h.invalidate(cctx)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property updated successfully",
	})
}

func (h *PropertiesHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			RespondError(ctx, http.StatusNotFound, "Property not found")
			return
		}

		RespondStoreFailure(ctx, "Failed to delete property", err)
		return
	}

	h.invalidate(cctx)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property deleted successfully",
	})
}

func (h *PropertiesHandler) invalidate(ctx context.Context) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, cacheKeyProperties)
	}
}

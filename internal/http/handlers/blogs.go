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
	"github.com/yuvrajghadi/thakkar-backend/internal/domain/blog"
)

type BlogsRepo interface {
	Create(ctx context.Context, b blog.Blog) (string, error)
	List(ctx context.Context) ([]blog.Blog, error)
	GetByID(ctx context.Context, id string) (blog.Blog, error)
}

const cacheKeyBlogs = "cache:blogs:list"

// Blogs deliberately have no update or delete endpoint; posts are
// replaced by publishing a new one.
type BlogsHandler struct {
	repo  BlogsRepo
	cache *cache.Client // nil disables caching
}

func NewBlogsHandler(repo BlogsRepo, cacheClient *cache.Client) *BlogsHandler {
	return &BlogsHandler{
		repo:  repo,
		cache: cacheClient,
	}
}

func (h *BlogsHandler) Create(ctx *gin.Context) {
	var req blog.CreateBlogRequest

	if !BindJSON(ctx, &req, "All blog fields are required") {
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	id, err := h.repo.Create(cctx, blog.NewFromCreateRequest(req))

	if err != nil {
		RespondCreateFailure(ctx, "Failed to save blog", err)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(cctx, cacheKeyBlogs)
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog saved successfully",
		"id":      id,
	})
}

func (h *BlogsHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	if h.cache != nil {
		if raw, ok := h.cache.GetJSON(cctx, cacheKeyBlogs); ok {
			var blogs []blog.Blog

			if json.Unmarshal(raw, &blogs) == nil {
				ctx.JSON(http.StatusOK, gin.H{
					"success": true,
					"data":    blogs,
				})
				return
			}
		}
	}

	blogs, err := h.repo.List(cctx)

	if err != nil {
		RespondStoreFailure(ctx, "Failed to fetch blogs", err)
		return
	}

	if h.cache != nil {
		h.cache.SetJSON(cctx, cacheKeyBlogs, blogs)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    blogs,
	})
}

func (h *BlogsHandler) GetByID(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	b, err := h.repo.GetByID(cctx, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			RespondError(ctx, http.StatusNotFound, "Blog not found")
			return
		}

		RespondError(ctx, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
	})
}

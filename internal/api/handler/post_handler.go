package handler

import (
	"errors"
	"net/http"

	"github.com/daan/miniblog/internal/api/dto"
	"github.com/daan/miniblog/internal/api/middleware"
	"github.com/daan/miniblog/internal/core/domain"
	"github.com/daan/miniblog/internal/core/repository"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: err.Error(),
		})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Unauthorized",
		})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), req.Title, req.Content, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to create post",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CreatePostResponse{
		ID: post.ID,
	})
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := repository.PostFilter{
		Author: c.Query("author"),
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to list posts",
		})
		return
	}

	response := make([]dto.PostResponse, len(posts))
	for i, post := range posts {
		response[i] = toPostResponse(post)
	}

	c.JSON(http.StatusOK, response)
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to get post",
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// UpdatePost handles PUT /posts/:id. The replacement stamps a fresh
// timestamp and reassigns the author to the current editor.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: err.Error(),
		})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Unauthorized",
		})
		return
	}

	err := h.postService.UpdatePost(c.Request.Context(), id, req.Title, req.Content, user.Username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Post not found or no changes made",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to update post",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: "Post updated",
	})
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	err := h.postService.DeletePost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to delete post",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: "Post deleted",
	})
}

func toPostResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		CreatedAt: post.CreatedAt,
	}
}

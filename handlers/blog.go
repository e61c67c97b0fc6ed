package handlers

import (
	"net/http"

	blogRepo "vango/database/repository/blog"
	"vango/models"
	"vango/services/content"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlogHandler serves blog CRUD plus the AI draft generator. Public reads see
// published posts only; admins see everything.
type BlogHandler struct {
	Repo      blogRepo.BlogRepository
	Generator *content.GeneratorService
}

func NewBlogHandler(repo blogRepo.BlogRepository, generator *content.GeneratorService) *BlogHandler {
	return &BlogHandler{Repo: repo, Generator: generator}
}

type generatePostRequest struct {
	Topic string   `json:"topic" binding:"required"`
	Tags  []string `json:"tags,omitempty"`
}

func (h *BlogHandler) ListHandler(c *gin.Context) {
	publishedOnly := !isAdmin(c)
	posts, err := h.Repo.GetAll(publishedOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve posts", err.Error())
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetBySlugHandler(c *gin.Context) {
	post, err := h.Repo.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve post", err.Error())
		return
	}
	if post == nil || (!post.Published && !isAdmin(c)) {
		utils.JSONError(c, http.StatusNotFound, "Post not found", "")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreateHandler(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post payload", err.Error())
		return
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug == "" {
		post.Slug = content.Slugify(post.Title)
	}
	if err := h.Repo.Create(&post); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create post", err.Error())
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdateHandler(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post payload", err.Error())
		return
	}
	post.ID = c.Param("id")
	if err := h.Repo.Update(&post); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update post", err.Error())
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete post", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// GenerateHandler drafts a post with the LLM and saves it unpublished for
// review.
func (h *BlogHandler) GenerateHandler(c *gin.Context) {
	var req generatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid generate payload", err.Error())
		return
	}

	post, err := h.Generator.GeneratePost(c.Request.Context(), req.Topic, req.Tags)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Post generation failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, post)
}

func isAdmin(c *gin.Context) bool {
	v, ok := c.Get("isAdmin")
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}

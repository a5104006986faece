package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamconnect/internal/models/request_models"
	"roamconnect/internal/services"
	"roamconnect/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost godoc
// @Summary Create a travel post
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

// GetPost godoc
// @Summary Get a travel post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [get]
func (p *PostController) GetPost(c *gin.Context) {
	post, err := p.postService.GetPostById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post retrieved successfully")
}

// ListPosts godoc
// @Summary List travel posts, newest first
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	posts, err := p.postService.ListPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts retrieved successfully")
}

// UpdatePost godoc
// @Summary Update a travel post
// @Description Only the creator may update a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Post update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /posts/{id} [put]
func (p *PostController) UpdatePost(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), c.Param("id"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a travel post
// @Description Only the creator may delete a post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /posts/{id} [delete]
func (p *PostController) DeletePost(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), c.Param("id"), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
	"roamconnect/internal/models/request_models"
	"roamconnect/internal/models/response_models"
	"roamconnect/internal/repositories"
	"roamconnect/pkg/utils"
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, userId string, request request_models.CreatePostRequest) (*response_models.PostResponse, error)
	GetPostById(ctx context.Context, id string) (*response_models.PostResponse, error)
	ListPosts(ctx context.Context) ([]response_models.PostResponse, error)
	UpdatePost(ctx context.Context, id string, userId string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, id string, userId string) error
}

type PostService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostServiceInterface {
	return &PostService{
		postRepo: postRepo,
	}
}

func (p *PostService) CreatePost(ctx context.Context, userId string, request request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	creatorId, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	post := &db_models.Post{
		CreatedBy: creatorId,
		Title:     request.Title,
		Content:   request.Content,
		LocLink:   request.LocLink,
		ImageURL:  request.ImageURL,
	}

	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := postToResponse(post)
	return &resp, nil
}

func (p *PostService) GetPostById(ctx context.Context, id string) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	resp := postToResponse(post)
	return &resp, nil
}

func (p *PostService) ListPosts(ctx context.Context) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.ListWithCreators(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, postToResponse(&posts[i]))
	}
	return responses, nil
}

func (p *PostService) UpdatePost(ctx context.Context, id string, userId string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	if post.CreatedBy.String() != userId {
		return nil, utils.ErrForbidden
	}

	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Content != nil {
		post.Content = *request.Content
	}
	if request.LocLink != nil {
		post.LocLink = *request.LocLink
	}
	if request.ImageURL != nil {
		post.ImageURL = request.ImageURL
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := postToResponse(post)
	return &resp, nil
}

func (p *PostService) DeletePost(ctx context.Context, id string, userId string) error {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}
	if post.CreatedBy.String() != userId {
		return utils.ErrForbidden
	}

	if err := p.postRepo.DeleteById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPostNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func postToResponse(post *db_models.Post) response_models.PostResponse {
	creatorName := ""
	if post.Creator != nil {
		creatorName = post.Creator.Name
	}
	return response_models.PostResponse{
		ID:          post.ID.String(),
		CreatedAt:   utils.FormatRFC3339IST(utils.FromUnixSecondsIST(post.CreatedAt)),
		CreatedBy:   post.CreatedBy.String(),
		CreatorName: creatorName,
		Title:       post.Title,
		Content:     post.Content,
		LocLink:     post.LocLink,
		ImageURL:    post.ImageURL,
	}
}

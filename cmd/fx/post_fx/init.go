package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamconnect/internal/api/controllers"
	"roamconnect/internal/repositories"
	"roamconnect/internal/services"
)

var Module = fx.Provide(
	providePostRepo,
	providePostService,
	providePostController)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(postRepo repositories.PostRepository) services.PostServiceInterface {
	return services.NewPostService(postRepo)
}

func providePostController(postService services.PostServiceInterface) *controllers.PostController {
	return controllers.NewPostController(postService)
}

package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamconnect/internal/api/controllers"
	"roamconnect/internal/repositories"
	"roamconnect/internal/services"
	"roamconnect/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideEmbeddingRepo,
	provideNormalizerService,
	provideViewService,
	provideItineraryService,
	provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IItineraryEmbeddingRepository {
	return repositories.NewItineraryEmbeddingRepository(db)
}

func provideNormalizerService() services.NormalizerServiceInterface {
	return services.NewNormalizerService()
}

func provideViewService() services.ItineraryViewServiceInterface {
	return services.NewItineraryViewService()
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	embeddingRepo repositories.IItineraryEmbeddingRepository,
	planner utils.PlannerClientInterface,
	embedder utils.EmbeddingClientInterface,
	normalizer services.NormalizerServiceInterface,
	viewService services.ItineraryViewServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, embeddingRepo, planner, embedder, normalizer, viewService)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

package emergency_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamconnect/internal/api/controllers"
	"roamconnect/internal/repositories"
	"roamconnect/internal/services"
)

var Module = fx.Provide(
	provideEmergencyRepo,
	provideEmergencyService,
	provideEmergencyController)

func provideEmergencyRepo(db *gorm.DB) repositories.EmergencyContactRepository {
	return repositories.NewEmergencyContactRepository(db)
}

func provideEmergencyService(contactRepo repositories.EmergencyContactRepository) services.EmergencyServiceInterface {
	return services.NewEmergencyService(contactRepo)
}

func provideEmergencyController(emergencyService services.EmergencyServiceInterface) *controllers.EmergencyController {
	return controllers.NewEmergencyController(emergencyService)
}

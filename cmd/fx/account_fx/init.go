package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamconnect/internal/api/controllers"
	"roamconnect/internal/repositories"
	"roamconnect/internal/services"
	mem "roamconnect/pkg/memcache"
)

var Module = fx.Provide(
	provideTouristRepo,
	provideAccountService,
	provideAccountController)

func provideTouristRepo(db *gorm.DB) repositories.TouristRepository {
	return repositories.NewTouristRepository(db)
}

func provideAccountService(
	touristRepo repositories.TouristRepository,
	resetTokens mem.ResetTokenStore,
	mailService services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(touristRepo, resetTokens, mailService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}

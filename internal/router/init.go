package router

import (
	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/internal/container"
	pginfra "github.com/oksasatya/careertrack/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/careertrack/internal/interface/http"
	"github.com/oksasatya/careertrack/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	authSvc := application.NewAuthService(
		users,
		jwt,
		container.GetRedis(),
		container.GetRabbitPub(),
		logger,
		cfg.ResetTokenTTL,
		cfg.ResetURL,
	)
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))

	profileSvc := application.NewProfileService(
		pginfra.NewEducationRepository(pool),
		pginfra.NewEmploymentRepository(pool),
		pginfra.NewSkillRepository(pool),
		pginfra.NewCertificationRepository(pool),
		pginfra.NewProjectRepository(pool),
		logger,
	)
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), jwt))

	jobSvc := application.NewJobService(
		pginfra.NewJobPostingRepository(pool),
		container.GetES(),
		cfg.ESJobsIndex,
		container.GetLLM(),
		logger,
	)
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger), jwt))

	resumeSvc := application.NewResumeService(
		pginfra.NewResumeRepository(pool),
		pginfra.NewPresetRepository(pool),
		logger,
	)
	r.Add(modules.NewResumeModule(handlers.NewResumeHandler(resumeSvc, logger), jwt))

	uploadSvc := application.NewUploadService(cfg.UploadDir, cfg.MaxUploadSize, logger)
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(uploadSvc, logger), jwt))
}

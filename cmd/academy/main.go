package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/drives-academy/academy-api/internal/config"
	"github.com/drives-academy/academy-api/internal/infra/database"
	"github.com/drives-academy/academy-api/internal/infra/repository"
	"github.com/drives-academy/academy-api/internal/infra/telemetry"
	"github.com/drives-academy/academy-api/internal/present/rest"
	"github.com/drives-academy/academy-api/internal/present/rest/middleware"
	"github.com/drives-academy/academy-api/internal/service"
	"github.com/drives-academy/academy-api/internal/usecase"
)

func main() {
	configPath := flag.String("config", "/etc/academy/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		panic(err)
	}

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.Setup(context.Background(), conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("Failed to setup tracing", slog.String("error", err.Error()))
			panic(err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("Failed to shutdown tracing", slog.String("error", err.Error()))
			}
		}()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	userRepo := repository.NewUserRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	quizRepo := repository.NewQuizRepository(db, mc)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	resultRepo := repository.NewResultRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	rulesRepo := repository.NewRulesRepository(db, rdb)

	signal := service.NewSignalService(rdb)
	auth := service.NewAuthService([]byte(conf.Auth.Secret))
	credential := service.NewCredentialService(userRepo, conf.Auth)

	lessons := usecase.NewLessonUsecase(lessonRepo)
	quizzes := usecase.NewQuizUsecase(quizRepo, questionRepo, answerRepo)
	results := usecase.NewResultUsecase(resultRepo, signal)
	videos := usecase.NewVideoUsecase(videoRepo)
	rules := usecase.NewRulesUsecase(rulesRepo)

	handler := rest.NewHandler(credential, lessons, quizzes, results, videos, rules, signal)
	authMiddleware := middleware.NewAuthMiddleware(auth)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("academy-api"))
	}
	e.Validator = rest.NewValidator()

	handler.RegisterRoutes(e, authMiddleware)

	e.Logger.Fatal(e.Start(conf.Server.Addr))
}

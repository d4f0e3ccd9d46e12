package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/config"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	appHTTP "github.com/pontocerto/ponto-backend-go/internal/handler/http"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/cron"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/sse"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/storage"
	"github.com/pontocerto/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontocerto/ponto-backend-go/internal/service/auth"
	companyService "github.com/pontocerto/ponto-backend-go/internal/service/company"
	employeeService "github.com/pontocerto/ponto-backend-go/internal/service/employee"
	photoService "github.com/pontocerto/ponto-backend-go/internal/service/photo"
	punchService "github.com/pontocerto/ponto-backend-go/internal/service/punch"
	reportService "github.com/pontocerto/ponto-backend-go/internal/service/report"
	timesheetService "github.com/pontocerto/ponto-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Timesheet.Timezone)
	if err != nil {
		log.Fatal("Invalid timesheet timezone: ", cfg.Timesheet.Timezone)
	}

	engineCfg := timesheet.Config{
		LunchThresholdMinutes: cfg.Timesheet.LunchThresholdMinutes,
		LunchDeductionMinutes: cfg.Timesheet.LunchDeductionMinutes,
		ExpectedMinutesPerDay: cfg.Timesheet.ExpectedMinutesPerDay,
		Pairing:               timesheet.PairingPolicy(cfg.Timesheet.PairingPolicy),
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	photoRepo := postgresql.NewPhotoRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Driver {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	hub := sse.NewHub()

	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, loc, cfg.Timesheet.BatchConcurrency)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	photoSvc := photoService.NewPhotoService(photoRepo, fileStorage)
	punchSvc := punchService.NewPunchService(punchRepo, employeeSvc, employeeRepo, photoSvc, hub, loc)
	reportSvc := reportService.NewReportService(timesheetSvc, employeeRepo, companyRepo, engineCfg, loc)
	authSvc := authService.NewAuthService(db, userRepo, companyRepo, refreshTokenRepo, jwtSvc, googleSvc)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(companyRepo, employeeRepo, timesheetSvc, hub, engineCfg, loc)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtSvc,
		appHTTP.NewAuthHandler(authSvc, jwtSvc, googleSvc),
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewPunchHandler(punchSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc, engineCfg),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewPhotoHandler(photoSvc),
		appHTTP.NewSSEHandler(hub, jwtSvc),
		cfg.App.Env,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pointago/pointage-backend-go/internal/config"
	appHTTP "github.com/pointago/pointage-backend-go/internal/handler/http"
	"github.com/pointago/pointage-backend-go/internal/pkg/calendar"
	"github.com/pointago/pointage-backend-go/internal/pkg/cron"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
	"github.com/pointago/pointage-backend-go/internal/pkg/jwt"
	"github.com/pointago/pointage-backend-go/internal/pkg/storage"
	"github.com/pointago/pointage-backend-go/internal/repository/postgresql"
	attendanceService "github.com/pointago/pointage-backend-go/internal/service/attendance"
	authService "github.com/pointago/pointage-backend-go/internal/service/auth"
	biometricService "github.com/pointago/pointage-backend-go/internal/service/biometric"
	"github.com/pointago/pointage-backend-go/internal/service/file"
	justificationService "github.com/pointago/pointage-backend-go/internal/service/justification"
	reportService "github.com/pointago/pointage-backend-go/internal/service/report"
	scheduleService "github.com/pointago/pointage-backend-go/internal/service/schedule"
	statisticsService "github.com/pointago/pointage-backend-go/internal/service/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	caseRepo := postgresql.NewJustificationRepository(db)
	scheduleRepo := postgresql.NewShiftScheduleRepository(db)
	statisticsRepo := postgresql.NewStatisticsRepository(db)
	biometricRepo := postgresql.NewBiometricLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	cal := calendar.New(cfg.Attendance.Holidays)

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleRepo, userRepo, cal, cfg.Attendance)
	justificationSvc := justificationService.NewJustificationService(db, caseRepo, attendanceRepo, fileService)
	statisticsSvc := statisticsService.NewStatisticsService(statisticsRepo, userRepo, cal)
	scheduleSvc := scheduleService.NewShiftScheduleService(scheduleRepo, userRepo)
	biometricSvc := biometricService.NewBiometricService(biometricRepo, userRepo, attendanceSvc)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	statisticsHandler := appHTTP.NewStatisticsHandler(statisticsSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	biometricHandler := appHTTP.NewBiometricHandler(biometricSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, userRepo, cal, cfg.Attendance).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		justificationHandler,
		statisticsHandler,
		scheduleHandler,
		biometricHandler,
		reportHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

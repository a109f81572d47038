package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrmflow/hrm-backend-go/internal/config"
	appHTTP "github.com/hrmflow/hrm-backend-go/internal/handler/http"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/jwt"
	"github.com/hrmflow/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmflow/hrm-backend-go/internal/service/attendance"
	authService "github.com/hrmflow/hrm-backend-go/internal/service/auth"
	companyService "github.com/hrmflow/hrm-backend-go/internal/service/company"
	employeeService "github.com/hrmflow/hrm-backend-go/internal/service/employee"
	holidayService "github.com/hrmflow/hrm-backend-go/internal/service/holiday"
	leaveService "github.com/hrmflow/hrm-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, JWTService)
	companySvc := companyService.NewCompanyService(db, companyRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, companyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, holidayRepo, leaveRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		holidayHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

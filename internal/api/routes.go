package api

import (
	"net/http"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	adminService service.AdminService,
	memberService service.MemberService,
	reportService service.ReportService,
	audit service.AuditLogger,
) {

	authHandler := NewAuthHandler(authService)
	adminHandler := NewAdminHandler(adminService)
	memberHandler := NewMemberHandler(memberService)
	reportHandler := NewReportHandler(reportService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.RegisterAdmin)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Admin Dashboard Routes ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(audit, domain.RoleAdmin))
		{
			adminGroup.GET("/overview", adminHandler.GetOverview)

			adminGroup.POST("/members", adminHandler.AddMember)
			adminGroup.GET("/members", adminHandler.ListMembers)
			adminGroup.PUT("/members/:id", adminHandler.UpdateMember)
			adminGroup.DELETE("/members/:id", adminHandler.DeleteMember)

			adminGroup.POST("/bills", adminHandler.CreateBill)

			adminGroup.GET("/fee-packages", adminHandler.ListFeePackages)
			adminGroup.POST("/fee-packages", adminHandler.AddFeePackage)
			adminGroup.DELETE("/fee-packages/:id", adminHandler.DeleteFeePackage)

			adminGroup.POST("/notifications", adminHandler.SendNotification)

			adminGroup.GET("/workout-plans", adminHandler.ListWorkoutPlans)
			adminGroup.POST("/workout-plans", adminHandler.AddWorkoutPlan)
			adminGroup.DELETE("/workout-plans/:id", adminHandler.DeleteWorkoutPlan)

			adminGroup.GET("/diet-plans", adminHandler.ListDietPlans)
			adminGroup.POST("/diet-plans", adminHandler.AddDietPlan)
			adminGroup.DELETE("/diet-plans/:id", adminHandler.DeleteDietPlan)

			adminGroup.GET("/reports/members.csv", reportHandler.ExportMembersCSV)
			adminGroup.GET("/reports/archive-url", reportHandler.GetArchivedReportURL)
		}

		// --- Member Dashboard Routes ---
		memberGroup := protected.Group("/member")
		memberGroup.Use(RoleMiddleware(audit, domain.RoleMember))
		{
			memberGroup.GET("/profile", memberHandler.GetProfile)
			memberGroup.PUT("/profile", memberHandler.UpdateProfile)

			memberGroup.GET("/bills", memberHandler.ListBills)
			memberGroup.POST("/bills/:id/pay", memberHandler.PayBill)

			memberGroup.GET("/notifications", memberHandler.ListNotifications)
			memberGroup.POST("/notifications/:id/read", memberHandler.MarkNotificationRead)

			memberGroup.GET("/workout-plan", memberHandler.GetWorkoutPlan)
			memberGroup.GET("/diet-plan", memberHandler.GetDietPlan)
		}
	}
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mpradela/managme/internal/services"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.LanguageMiddleware)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/google", handler.GoogleLogin)
	auth.Get("/google/callback", handler.GoogleCallback)
	auth.Post("/password/forgot", handler.ForgotPassword)
	auth.Post("/password/reset", handler.ResetPassword)

	me := auth.Group("/me", handler.AuthRequired)
	me.Get("", handler.Me)
	me.Put("/profile", handler.UpdateProfile)
	me.Put("/settings", handler.UpdateSettings)
	me.Post("/avatar", handler.UploadAvatar)
	me.Delete("", handler.DeleteAccount)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.ListUsers)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id/role", handler.Permit(services.OperationUserAdmin), handler.ChangeUserRole)
	users.Delete("/:id", handler.Permit(services.OperationUserAdmin), handler.DeleteUser)

	projects := api.Group("/projects", handler.AuthRequired)
	projects.Get("", handler.ListProjects)
	projects.Get("/:id", handler.GetProject)
	projects.Post("", handler.Permit(services.OperationProjectWrite), handler.CreateProject)
	projects.Put("/:id", handler.Permit(services.OperationProjectWrite), handler.UpdateProject)
	projects.Delete("/:id", handler.Permit(services.OperationProjectWrite), handler.DeleteProject)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Get("/:id", handler.GetTask)
	tasks.Post("", handler.Permit(services.OperationTaskWrite), handler.CreateTask)
	tasks.Put("/:id", handler.Permit(services.OperationTaskWrite), handler.UpdateTask)
	tasks.Delete("/:id", handler.Permit(services.OperationTaskWrite), handler.DeleteTask)
	tasks.Get("/:taskId/milestones", handler.ListTaskMilestones)
	tasks.Post("/:taskId/milestones", handler.Permit(services.OperationMilestoneWrite), handler.CreateTaskMilestone)
	tasks.Delete("/:taskId/milestones/:milestoneId", handler.Permit(services.OperationMilestoneWrite), handler.DeleteTaskMilestone)

	milestones := api.Group("/milestones", handler.AuthRequired)
	milestones.Get("", handler.ListMilestones)
	milestones.Get("/:id", handler.GetMilestone)
	milestones.Post("", handler.Permit(services.OperationMilestoneWrite), handler.CreateMilestone)
	milestones.Put("/:id", handler.Permit(services.OperationMilestoneWrite), handler.UpdateMilestone)
	milestones.Delete("/:id", handler.Permit(services.OperationMilestoneWrite), handler.DeleteMilestone)
	milestones.Post("/:id/assign", handler.Permit(services.OperationMilestoneWrite), handler.AssignMilestone)
	milestones.Post("/:id/complete", handler.Permit(services.OperationMilestoneWrite), handler.CompleteMilestone)
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mediasocial/internal/domain"
	"mediasocial/internal/middleware"
	"mediasocial/internal/service"
)

type Handlers struct {
	Comment      *CommentHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Comment:      NewCommentHandler(services.Comment),
		Notification: NewNotificationHandler(services.Notification),
	}
}

func SetupRoutes(app *fiber.App, h *Handlers, jwtSecret string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	viewer := middleware.OptionalAuth(jwtSecret)
	v1.Get("/comments/search", viewer, h.Comment.FindByText)
	v1.Get("/comments/:commentId", viewer, h.Comment.Get)
	v1.Get("/comments/:commentId/replies", viewer, h.Comment.ListReplies)
	v1.Get("/comments/:commentId/replies/count", h.Comment.CountReplies)
	v1.Get("/contexts/:kind/:contextId/comments", viewer, h.Comment.ListRootComments)

	protected := v1.Group("", middleware.AuthRequired(jwtSecret))

	comments := protected.Group("/comments")
	comments.Post("/", h.Comment.Create)
	comments.Put("/:commentId", h.Comment.Update)
	comments.Delete("/:commentId", h.Comment.Delete)
	comments.Put("/:commentId/vote", h.Comment.Vote)
	comments.Delete("/:commentId/vote", h.Comment.Unvote)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Delete("/:id", h.Notification.Delete)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
}

func parseID(c *fiber.Ctx, param, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", domain.DefaultPageSize); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

package service

import (
	"go.uber.org/zap"

	"mediasocial/internal/repository"
	"mediasocial/internal/service/comment"
	"mediasocial/internal/service/notification"
)

type Services struct {
	Comment      comment.Service
	Notification notification.Service
}

func NewServices(repos *repository.Repositories, locale string, log *zap.Logger) *Services {
	notificationService := notification.NewService(repos.Notification, locale, log)
	commentService := comment.NewService(repos.Comment, repos.Vote, repos.User, repos.Notification, log)
	commentService.SetNotificationService(notificationService)

	return &Services{
		Comment:      commentService,
		Notification: notificationService,
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"mediasocial/internal/domain"
	"mediasocial/internal/middleware"
	"mediasocial/internal/service/comment"
)

// contextKinds maps the path segment of a hosting context to its kind.
var contextKinds = map[string]domain.ContextKind{
	"review":  domain.ContextReview,
	"reviews": domain.ContextReview,
	"video":   domain.ContextVideo,
	"videos":  domain.ContextVideo,
}

// commentView is a comment as served over HTTP, with the values derived from
// its voters. HasVoted is present only for authenticated callers.
type commentView struct {
	*domain.Comment
	Score    int   `json:"score"`
	IsRoot   bool  `json:"is_root"`
	HasVoted *bool `json:"has_voted,omitempty"`
}

func newCommentView(c *fiber.Ctx, comment *domain.Comment) commentView {
	view := commentView{
		Comment: comment,
		Score:   comment.Score(),
		IsRoot:  comment.IsRoot(),
	}
	if viewerID, err := middleware.GetUserID(c); err == nil {
		voted := comment.HasVoter(viewerID)
		view.HasVoted = &voted
	}
	return view
}

func newCommentViews(c *fiber.Ctx, comments []domain.Comment) []commentView {
	views := make([]commentView, len(comments))
	for i := range comments {
		views[i] = newCommentView(c, &comments[i])
	}
	return views
}

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.commentService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCommentView(c, created))
}

func (h *CommentHandler) Get(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	found, err := h.commentService.Get(c.Context(), commentID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentView(c, found))
}

func (h *CommentHandler) FindByText(c *fiber.Ctx) error {
	found, err := h.commentService.FindByText(c.Context(), c.Query("body"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentView(c, found))
}

func (h *CommentHandler) ListReplies(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	replies, err := h.commentService.ListReplies(c.Context(), commentID, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentViews(c, replies))
}

func (h *CommentHandler) CountReplies(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	count, err := h.commentService.CountReplies(c.Context(), commentID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

func (h *CommentHandler) ListRootComments(c *fiber.Ctx) error {
	kind, ok := contextKinds[c.Params("kind")]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown context kind")
	}
	contextID, err := parseID(c, "contextId", "context")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListRootComments(c.Context(), kind, contextID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentViews(c, comments))
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.commentService.UpdateText(c.Context(), userID, commentID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentView(c, updated))
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Context(), userID, commentID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *CommentHandler) Vote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	var input domain.VoteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	voted, err := h.commentService.Vote(c.Context(), userID, commentID, input.Flag)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentView(c, voted))
}

func (h *CommentHandler) Unvote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return err
	}

	unvoted, err := h.commentService.Unvote(c.Context(), userID, commentID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newCommentView(c, unvoted))
}

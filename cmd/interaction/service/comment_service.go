package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxCommentLength = 500 // Maximum comment length in characters
	MinCommentLength = 1   // Minimum comment length
)

type CommentService struct {
	ctx   context.Context
	store CommentStore
}

func NewCommentService(ctx context.Context, store CommentStore) *CommentService {
	return &CommentService{ctx: ctx, store: store}
}

func (s *CommentService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

type CreateCommentRequest struct {
	UserId        primitive.ObjectID
	ReelId        primitive.ObjectID
	Text          string
	ParentComment *primitive.ObjectID
}

func (s *CommentService) CreateComment(req *CreateCommentRequest) (*model.Comment, error) {
	if req.UserId.IsZero() || req.ReelId.IsZero() {
		return nil, errno.RequestErr.WithMessage("User ID and Reel ID are required")
	}
	if err := s.validateContent(req.Text); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &model.Comment{
		UserId:        req.UserId,
		ReelId:        req.ReelId,
		Text:          req.Text,
		Likes:         []primitive.ObjectID{},
		ParentComment: req.ParentComment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	comment, err := s.store.CreateComment(s.ctx, comment)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

func (s *CommentService) GetComment(id primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.store.GetCommentById(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	}
	return comment, nil
}

func (s *CommentService) ListComments() ([]*model.Comment, error) {
	comments, err := s.store.ListComments(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListComments failed")
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(id primitive.ObjectID, text string) (*model.Comment, error) {
	if err := s.validateContent(text); err != nil {
		return nil, err
	}
	comment, err := s.store.GetCommentById(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	}

	comment.Text = text
	comment.UpdatedAt = time.Now()
	if err := s.store.SaveComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveComment failed")
	}
	return comment, nil
}

// DeleteComment removes the comment and cascades to its direct replies.
// Deeper levels are left alone, matching the one-reply-level data model.
func (s *CommentService) DeleteComment(id primitive.ObjectID) error {
	if err := s.store.DeleteReplies(s.ctx, id); err != nil {
		return errors.WithMessage(err, "dao.DeleteReplies failed")
	}
	if err := s.store.DeleteComment(s.ctx, id); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}
	return nil
}

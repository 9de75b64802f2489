package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikeService struct {
	ctx      context.Context
	reels    ReelStore
	comments CommentStore
	recorder mq.Recorder
}

func NewLikeService(ctx context.Context, reels ReelStore, comments CommentStore, recorder mq.Recorder) *LikeService {
	return &LikeService{ctx: ctx, reels: reels, comments: comments, recorder: recorder}
}

type LikeRequest struct {
	TargetId primitive.ObjectID
	UserId   primitive.ObjectID
	Client   utils.ClientInfo
}

type LikeResult struct {
	Liked bool
	Likes int
}

// LikeReel toggles the user's membership in the reel's like set and records
// a like_reel/unlike_reel event. One persistence write per call.
func (s *LikeService) LikeReel(req *LikeRequest) (*LikeResult, error) {
	reel, err := s.reels.GetReelById(s.ctx, req.TargetId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetReelById failed")
	}

	likes, liked := toggleLike(reel.Likes, req.UserId)
	reel.Likes = likes
	if err := s.reels.SaveReel(s.ctx, reel); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveReel failed")
	}

	action := model.ActionUnlikeReel
	if liked {
		action = model.ActionLikeReel
	}
	event := mq.NewActionEvent(req.UserId.Hex(), action, "Reel", reel.ID.Hex())
	event.Device = req.Client.Device
	event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
	s.recorder.Record(s.ctx, event)

	return &LikeResult{Liked: liked, Likes: len(likes)}, nil
}

// LikeComment is the comment variant of the toggle; it records no event.
func (s *LikeService) LikeComment(req *LikeRequest) (*LikeResult, error) {
	comment, err := s.comments.GetCommentById(s.ctx, req.TargetId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	}

	likes, liked := toggleLike(comment.Likes, req.UserId)
	comment.Likes = likes
	if err := s.comments.SaveComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveComment failed")
	}

	return &LikeResult{Liked: liked, Likes: len(likes)}, nil
}

// toggleLike removes userId from the like set when present, otherwise
// appends it. Returns the new set and whether the result is a like.
func toggleLike(likes []primitive.ObjectID, userId primitive.ObjectID) ([]primitive.ObjectID, bool) {
	for i, id := range likes {
		if id == userId {
			return append(likes[:i], likes[i+1:]...), false
		}
	}
	return append(likes, userId), true
}

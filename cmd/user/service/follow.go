package service

import (
	"context"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"ReelHub.com/pkg/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FollowService struct {
	ctx      context.Context
	store    UserStore
	recorder mq.Recorder
}

func NewFollowService(ctx context.Context, store UserStore, recorder mq.Recorder) *FollowService {
	return &FollowService{ctx: ctx, store: store, recorder: recorder}
}

type FollowRequest struct {
	TargetId primitive.ObjectID
	UserId   primitive.ObjectID
	Client   utils.ClientInfo
}

// Follow adds the directed edge UserId -> TargetId: UserId joins the
// target's followers and TargetId joins the actor's following. The two
// saves are independent document writes; target is saved first, and a
// crash in between leaves an asymmetric edge the conflict check makes
// safe to retry.
func (s *FollowService) Follow(req *FollowRequest) error {
	if req.TargetId == req.UserId {
		return errno.RequestErr
	}

	target, err := s.store.GetUserById(s.ctx, req.TargetId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById target failed")
	}
	actor, err := s.store.GetUserById(s.ctx, req.UserId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById actor failed")
	}

	if target.HasFollower(req.UserId) {
		return errno.AlreadyFollowingErr
	}

	target.Followers = append(target.Followers, req.UserId)
	actor.Following = append(actor.Following, req.TargetId)

	if err := s.store.SaveUser(s.ctx, target); err != nil {
		return errors.WithMessage(err, "dao.SaveUser target failed")
	}
	if err := s.store.SaveUser(s.ctx, actor); err != nil {
		return errors.WithMessage(err, "dao.SaveUser actor failed")
	}

	s.record(req, model.ActionFollowUser)
	return nil
}

// Unfollow removes the edge on both sides; conflict when it is absent.
func (s *FollowService) Unfollow(req *FollowRequest) error {
	if req.TargetId == req.UserId {
		return errno.RequestErr
	}

	target, err := s.store.GetUserById(s.ctx, req.TargetId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById target failed")
	}
	actor, err := s.store.GetUserById(s.ctx, req.UserId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById actor failed")
	}

	if !target.HasFollower(req.UserId) {
		return errno.NotFollowingErr
	}

	target.Followers = removeId(target.Followers, req.UserId)
	actor.Following = removeId(actor.Following, req.TargetId)

	if err := s.store.SaveUser(s.ctx, target); err != nil {
		return errors.WithMessage(err, "dao.SaveUser target failed")
	}
	if err := s.store.SaveUser(s.ctx, actor); err != nil {
		return errors.WithMessage(err, "dao.SaveUser actor failed")
	}

	s.record(req, model.ActionUnfollowUser)
	return nil
}

func (s *FollowService) record(req *FollowRequest, action string) {
	event := mq.NewActionEvent(req.UserId.Hex(), action, "User", req.TargetId.Hex())
	event.Device = req.Client.Device
	event.Location = model.ActionLocation{Ip: req.Client.Ip, Country: req.Client.Country}
	s.recorder.Record(s.ctx, event)
}

func removeId(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

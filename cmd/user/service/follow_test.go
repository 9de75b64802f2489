package service

import (
	"context"
	"testing"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users map[primitive.ObjectID]*model.User
	saves int
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[primitive.ObjectID]*model.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errno.UserNotExistErr
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errno.UserNotExistErr
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) SaveUser(ctx context.Context, user *model.User) error {
	copied := *user
	s.users[user.ID] = &copied
	s.saves++
	return nil
}

func (s *fakeUserStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	delete(s.users, id)
	return nil
}

func newTestUser() *model.User {
	return &model.User{
		ID:        primitive.NewObjectID(),
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
	}
}

func errCode(t *testing.T, err error) int64 {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	return errno.ConvertErr(err).ErrCode
}

func TestFollowUpdatesBothSides(t *testing.T) {
	actor, target := newTestUser(), newTestUser()
	store := newFakeUserStore(actor, target)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	req := &FollowRequest{TargetId: target.ID, UserId: actor.ID}
	if err := svc.Follow(req); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	gotTarget := store.users[target.ID]
	if len(gotTarget.Followers) != 1 || gotTarget.Followers[0] != actor.ID {
		t.Errorf("target followers = %v, want [%v]", gotTarget.Followers, actor.ID)
	}
	gotActor := store.users[actor.ID]
	if len(gotActor.Following) != 1 || gotActor.Following[0] != target.ID {
		t.Errorf("actor following = %v, want [%v]", gotActor.Following, target.ID)
	}
}

func TestFollowTwiceConflicts(t *testing.T) {
	actor, target := newTestUser(), newTestUser()
	store := newFakeUserStore(actor, target)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	req := &FollowRequest{TargetId: target.ID, UserId: actor.ID}
	if err := svc.Follow(req); err != nil {
		t.Fatalf("first Follow failed: %v", err)
	}
	savesAfterFirst := store.saves

	if code := errCode(t, svc.Follow(req)); code != errno.AlreadyFollowCode {
		t.Errorf("second Follow code = %d, want %d", code, errno.AlreadyFollowCode)
	}
	if store.saves != savesAfterFirst {
		t.Error("conflicting Follow must not write")
	}
	if got := len(store.users[target.ID].Followers); got != 1 {
		t.Errorf("target followers grew to %d", got)
	}
}

func TestUnfollowRemovesBothSides(t *testing.T) {
	actor, target := newTestUser(), newTestUser()
	store := newFakeUserStore(actor, target)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	req := &FollowRequest{TargetId: target.ID, UserId: actor.ID}
	if err := svc.Follow(req); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if err := svc.Unfollow(req); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}

	if got := store.users[target.ID].Followers; len(got) != 0 {
		t.Errorf("target followers = %v, want empty", got)
	}
	if got := store.users[actor.ID].Following; len(got) != 0 {
		t.Errorf("actor following = %v, want empty", got)
	}
}

func TestUnfollowWithoutFollowConflicts(t *testing.T) {
	actor, target := newTestUser(), newTestUser()
	store := newFakeUserStore(actor, target)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	err := svc.Unfollow(&FollowRequest{TargetId: target.ID, UserId: actor.ID})
	if code := errCode(t, err); code != errno.NotFollowingCode {
		t.Errorf("Unfollow code = %d, want %d", code, errno.NotFollowingCode)
	}
}

func TestFollowMissingUser(t *testing.T) {
	actor := newTestUser()
	store := newFakeUserStore(actor)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	err := svc.Follow(&FollowRequest{TargetId: primitive.NewObjectID(), UserId: actor.ID})
	if code := errCode(t, err); code != errno.UserNotExistCode {
		t.Errorf("Follow code = %d, want %d", code, errno.UserNotExistCode)
	}
}

func TestFollowSelfRejected(t *testing.T) {
	actor := newTestUser()
	store := newFakeUserStore(actor)
	svc := NewFollowService(context.Background(), store, mq.NopRecorder{})

	err := svc.Follow(&FollowRequest{TargetId: actor.ID, UserId: actor.ID})
	if code := errCode(t, err); code != errno.ParamErrCode {
		t.Errorf("self Follow code = %d, want %d", code, errno.ParamErrCode)
	}
}

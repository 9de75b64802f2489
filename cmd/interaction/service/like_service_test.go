package service

import (
	"context"
	"testing"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/mq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReelStore struct {
	reels map[primitive.ObjectID]*model.Reel
	saves int
}

func newFakeReelStore(reels ...*model.Reel) *fakeReelStore {
	s := &fakeReelStore{reels: make(map[primitive.ObjectID]*model.Reel)}
	for _, r := range reels {
		s.reels[r.ID] = r
	}
	return s
}

func (s *fakeReelStore) GetReelById(ctx context.Context, id primitive.ObjectID) (*model.Reel, error) {
	r, ok := s.reels[id]
	if !ok {
		return nil, errno.ReelNotExistErr
	}
	copied := *r
	return &copied, nil
}

func (s *fakeReelStore) SaveReel(ctx context.Context, reel *model.Reel) error {
	copied := *reel
	s.reels[reel.ID] = &copied
	s.saves++
	return nil
}

func TestLikeReelToggles(t *testing.T) {
	reel := &model.Reel{ID: primitive.NewObjectID(), Likes: []primitive.ObjectID{}}
	store := newFakeReelStore(reel)
	svc := NewLikeService(context.Background(), store, nil, mq.NopRecorder{})

	userId := primitive.NewObjectID()
	req := &LikeRequest{TargetId: reel.ID, UserId: userId}

	res, err := svc.LikeReel(req)
	if err != nil {
		t.Fatalf("LikeReel failed: %v", err)
	}
	if !res.Liked || res.Likes != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", res.Liked, res.Likes)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}

	res, err = svc.LikeReel(req)
	if err != nil {
		t.Fatalf("second LikeReel failed: %v", err)
	}
	if res.Liked || res.Likes != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", res.Liked, res.Likes)
	}
	if got := store.reels[reel.ID].Likes; len(got) != 0 {
		t.Errorf("like set after double toggle = %v, want empty", got)
	}
}

func TestLikeReelKeepsOtherLikes(t *testing.T) {
	other := primitive.NewObjectID()
	reel := &model.Reel{ID: primitive.NewObjectID(), Likes: []primitive.ObjectID{other}}
	store := newFakeReelStore(reel)
	svc := NewLikeService(context.Background(), store, nil, mq.NopRecorder{})

	res, err := svc.LikeReel(&LikeRequest{TargetId: reel.ID, UserId: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("LikeReel failed: %v", err)
	}
	if !res.Liked || res.Likes != 2 {
		t.Errorf("toggle = (%v, %d), want (true, 2)", res.Liked, res.Likes)
	}
	if got := store.reels[reel.ID].Likes[0]; got != other {
		t.Errorf("existing like %v was dropped", other)
	}
}

func TestLikeReelMissing(t *testing.T) {
	svc := NewLikeService(context.Background(), newFakeReelStore(), nil, mq.NopRecorder{})

	_, err := svc.LikeReel(&LikeRequest{TargetId: primitive.NewObjectID(), UserId: primitive.NewObjectID()})
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := errno.ConvertErr(err).ErrCode; code != errno.ReelNotExistCode {
		t.Errorf("code = %d, want %d", code, errno.ReelNotExistCode)
	}
}

func TestLikeCommentToggles(t *testing.T) {
	comment := &model.Comment{ID: primitive.NewObjectID(), Likes: []primitive.ObjectID{}}
	store := newFakeCommentStore(comment)
	svc := NewLikeService(context.Background(), nil, store, mq.NopRecorder{})

	req := &LikeRequest{TargetId: comment.ID, UserId: primitive.NewObjectID()}

	res, err := svc.LikeComment(req)
	if err != nil {
		t.Fatalf("LikeComment failed: %v", err)
	}
	if !res.Liked || res.Likes != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", res.Liked, res.Likes)
	}

	res, err = svc.LikeComment(req)
	if err != nil {
		t.Fatalf("second LikeComment failed: %v", err)
	}
	if res.Liked || res.Likes != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", res.Liked, res.Likes)
	}
}

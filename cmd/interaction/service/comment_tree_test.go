package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCommentStore struct {
	comments []*model.Comment
}

func newFakeCommentStore(comments ...*model.Comment) *fakeCommentStore {
	return &fakeCommentStore{comments: comments}
}

func (s *fakeCommentStore) GetCommentById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	for _, c := range s.comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errno.CommentNotExistErr
}

func (s *fakeCommentStore) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	comment.ID = primitive.NewObjectID()
	s.comments = append(s.comments, comment)
	return comment, nil
}

func (s *fakeCommentStore) SaveComment(ctx context.Context, comment *model.Comment) error {
	for i, c := range s.comments {
		if c.ID == comment.ID {
			copied := *comment
			s.comments[i] = &copied
			return nil
		}
	}
	return errno.CommentNotExistErr
}

func (s *fakeCommentStore) ListComments(ctx context.Context) ([]*model.Comment, error) {
	return s.comments, nil
}

func (s *fakeCommentStore) GetReelTopComments(ctx context.Context, reelId primitive.ObjectID) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range s.comments {
		if c.ReelId == reelId && c.ParentComment == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeCommentStore) GetReplies(ctx context.Context, parentId primitive.ObjectID) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range s.comments {
		if c.ParentComment != nil && *c.ParentComment == parentId {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeCommentStore) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return errno.CommentNotExistErr
}

func (s *fakeCommentStore) DeleteReplies(ctx context.Context, parentId primitive.ObjectID) error {
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.ParentComment == nil || *c.ParentComment != parentId {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return nil
}

func topComment(reelId primitive.ObjectID, at time.Time) *model.Comment {
	return &model.Comment{
		ID:        primitive.NewObjectID(),
		ReelId:    reelId,
		CreatedAt: at,
	}
}

func replyTo(parent *model.Comment, at time.Time) *model.Comment {
	return &model.Comment{
		ID:            primitive.NewObjectID(),
		ReelId:        parent.ReelId,
		ParentComment: &parent.ID,
		CreatedAt:     at,
	}
}

func TestListReelCommentsOrdering(t *testing.T) {
	reelId := primitive.NewObjectID()
	base := time.Now()

	oldest := topComment(reelId, base.Add(-3*time.Hour))
	middle := topComment(reelId, base.Add(-2*time.Hour))
	newest := topComment(reelId, base.Add(-time.Hour))

	lateReply := replyTo(middle, base.Add(-30*time.Minute))
	earlyReply := replyTo(middle, base.Add(-90*time.Minute))

	store := newFakeCommentStore(oldest, middle, newest, lateReply, earlyReply)
	svc := NewCommentTreeService(context.Background(), store)

	tree, err := svc.ListReelComments(reelId)
	if err != nil {
		t.Fatalf("ListReelComments failed: %v", err)
	}

	if len(tree) != 3 {
		t.Fatalf("got %d top-level comments, want 3", len(tree))
	}
	wantOrder := []primitive.ObjectID{newest.ID, middle.ID, oldest.ID}
	for i, want := range wantOrder {
		if tree[i].ID != want {
			t.Errorf("top-level[%d] = %v, want %v", i, tree[i].ID, want)
		}
	}

	replies := tree[1].Replies
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(replies))
	}
	if replies[0].ID != earlyReply.ID || replies[1].ID != lateReply.ID {
		t.Error("replies are not oldest first")
	}
	if len(tree[0].Replies) != 0 || len(tree[2].Replies) != 0 {
		t.Error("replies attached to the wrong parent")
	}
}

func TestListReelCommentsExcludesReplies(t *testing.T) {
	reelId := primitive.NewObjectID()
	top := topComment(reelId, time.Now())
	reply := replyTo(top, time.Now().Add(time.Minute))

	store := newFakeCommentStore(top, reply)
	svc := NewCommentTreeService(context.Background(), store)

	tree, err := svc.ListReelComments(reelId)
	if err != nil {
		t.Fatalf("ListReelComments failed: %v", err)
	}
	if len(tree) != 1 {
		t.Fatalf("got %d top-level comments, want 1", len(tree))
	}
	if tree[0].ID == reply.ID {
		t.Error("a reply surfaced as a top-level comment")
	}
}

func TestListReelCommentsOtherReelIgnored(t *testing.T) {
	reelId := primitive.NewObjectID()
	store := newFakeCommentStore(
		topComment(reelId, time.Now()),
		topComment(primitive.NewObjectID(), time.Now()),
	)
	svc := NewCommentTreeService(context.Background(), store)

	tree, err := svc.ListReelComments(reelId)
	if err != nil {
		t.Fatalf("ListReelComments failed: %v", err)
	}
	if len(tree) != 1 {
		t.Errorf("got %d comments, want 1", len(tree))
	}
}

func TestListReelCommentsEmpty(t *testing.T) {
	svc := NewCommentTreeService(context.Background(), newFakeCommentStore())

	tree, err := svc.ListReelComments(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListReelComments failed: %v", err)
	}
	if len(tree) != 0 {
		t.Errorf("got %d comments, want 0", len(tree))
	}
}

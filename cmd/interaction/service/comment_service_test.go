package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"ReelHub.com/pkg/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCommentValidation(t *testing.T) {
	svc := NewCommentService(context.Background(), newFakeCommentStore())
	userId, reelId := primitive.NewObjectID(), primitive.NewObjectID()

	cases := []struct {
		name string
		req  *CreateCommentRequest
	}{
		{"missing ids", &CreateCommentRequest{Text: "hi"}},
		{"empty text", &CreateCommentRequest{UserId: userId, ReelId: reelId, Text: "   "}},
		{"too long", &CreateCommentRequest{UserId: userId, ReelId: reelId, Text: strings.Repeat("a", MaxCommentLength+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateComment(tc.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := errno.ConvertErr(err).ErrCode; code != errno.ParamErrCode {
				t.Errorf("code = %d, want %d", code, errno.ParamErrCode)
			}
		})
	}
}

func TestCreateCommentReply(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(context.Background(), store)

	parent, err := svc.CreateComment(&CreateCommentRequest{
		UserId: primitive.NewObjectID(),
		ReelId: primitive.NewObjectID(),
		Text:   "first",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if parent.IsReply() {
		t.Error("top-level comment reports IsReply")
	}

	reply, err := svc.CreateComment(&CreateCommentRequest{
		UserId:        primitive.NewObjectID(),
		ReelId:        parent.ReelId,
		Text:          "second",
		ParentComment: &parent.ID,
	})
	if err != nil {
		t.Fatalf("CreateComment reply failed: %v", err)
	}
	if !reply.IsReply() || *reply.ParentComment != parent.ID {
		t.Errorf("reply parent = %v, want %v", reply.ParentComment, parent.ID)
	}
}

func TestUpdateComment(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	comment := topComment(primitive.NewObjectID(), created)
	comment.Text = "before"
	comment.UpdatedAt = created

	store := newFakeCommentStore(comment)
	svc := NewCommentService(context.Background(), store)

	updated, err := svc.UpdateComment(comment.ID, "after")
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if updated.Text != "after" {
		t.Errorf("text = %q, want %q", updated.Text, "after")
	}
	if !updated.UpdatedAt.After(created) {
		t.Error("UpdatedAt was not advanced")
	}
}

func TestDeleteCommentCascades(t *testing.T) {
	reelId := primitive.NewObjectID()
	parent := topComment(reelId, time.Now())
	reply := replyTo(parent, time.Now())
	other := topComment(reelId, time.Now())

	store := newFakeCommentStore(parent, reply, other)
	svc := NewCommentService(context.Background(), store)

	if err := svc.DeleteComment(parent.ID); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}

	if len(store.comments) != 1 || store.comments[0].ID != other.ID {
		t.Errorf("remaining comments = %v, want only %v", store.comments, other.ID)
	}
}

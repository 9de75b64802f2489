package service

import (
	"context"
	"time"

	"ReelHub.com/cmd/model"
	"ReelHub.com/pkg/errno"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MusicStore is the slice of the document store the music service consumes.
type MusicStore interface {
	GetMusicById(ctx context.Context, id primitive.ObjectID) (*model.Music, error)
	CreateMusic(ctx context.Context, music *model.Music) (*model.Music, error)
	ListMusic(ctx context.Context) ([]*model.Music, error)
	DeleteMusic(ctx context.Context, id primitive.ObjectID) error
}

type MusicService struct {
	ctx   context.Context
	store MusicStore
}

func NewMusicService(ctx context.Context, store MusicStore) *MusicService {
	return &MusicService{ctx: ctx, store: store}
}

type CreateMusicRequest struct {
	Title    string
	Artist   string
	Url      string
	Duration float64
}

func (s *MusicService) CreateMusic(req *CreateMusicRequest) (*model.Music, error) {
	if req.Title == "" || req.Url == "" {
		return nil, errno.RequestErr.WithMessage("Title and url are required")
	}
	music := &model.Music{
		Title:     req.Title,
		Artist:    req.Artist,
		Url:       req.Url,
		Duration:  req.Duration,
		CreatedAt: time.Now(),
	}
	music, err := s.store.CreateMusic(s.ctx, music)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateMusic failed")
	}
	return music, nil
}

func (s *MusicService) GetMusic(id primitive.ObjectID) (*model.Music, error) {
	music, err := s.store.GetMusicById(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetMusicById failed")
	}
	return music, nil
}

func (s *MusicService) ListMusic() ([]*model.Music, error) {
	tracks, err := s.store.ListMusic(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListMusic failed")
	}
	return tracks, nil
}

func (s *MusicService) DeleteMusic(id primitive.ObjectID) error {
	if err := s.store.DeleteMusic(s.ctx, id); err != nil {
		return errors.WithMessage(err, "dao.DeleteMusic failed")
	}
	return nil
}

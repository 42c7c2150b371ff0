// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository/dao"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
)

var (
	ErrRecordNotFound  = dao.ErrRecordNotFound
	ErrDuplicateRecord = dao.ErrDuplicateRecord
)

// 练习创建之后不会再修改，所以缓存一天也没有问题
const exerciseExpiration = 24 * time.Hour

//go:generate mockgen -source=./exercise.go -package=repomocks -destination=mocks/exercise.mock.go ExerciseRepository
type ExerciseRepository interface {
	ListTracks(ctx context.Context, limit int) ([]domain.Track, error)
	// JoinTrack 重复加入返回 ErrDuplicateRecord
	JoinTrack(ctx context.Context, uid, trackId string) error
	// ListByTrack 没有练习的时候返回 ErrRecordNotFound
	ListByTrack(ctx context.Context, trackId string) ([]domain.Exercise, error)
	Detail(ctx context.Context, id string) (domain.Exercise, error)
	TestMeta(ctx context.Context, id string) (domain.TestMeta, error)
	CountByTrack(ctx context.Context, trackId string) (int64, error)
}

var _ ExerciseRepository = &CachedExerciseRepository{}

type CachedExerciseRepository struct {
	dao   dao.ExerciseDAO
	store *cacheaside.Store
}

func NewCachedExerciseRepository(d dao.ExerciseDAO, store *cacheaside.Store) ExerciseRepository {
	return &CachedExerciseRepository{dao: d, store: store}
}

func (repo *CachedExerciseRepository) ListTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	tracks, err := repo.dao.ListTracks(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(tracks, func(idx int, src dao.Track) domain.Track {
		return domain.Track{
			Id:   src.Id,
			Name: src.Name,
			Tags: src.Tags.Val,
			Logo: src.Logo,
		}
	}), nil
}

func (repo *CachedExerciseRepository) JoinTrack(ctx context.Context, uid, trackId string) error {
	return repo.dao.JoinTrack(ctx, dao.UserTrack{
		Uid:     uid,
		TrackId: trackId,
	})
}

func (repo *CachedExerciseRepository) ListByTrack(ctx context.Context, trackId string) ([]domain.Exercise, error) {
	key := cacheaside.Key("exercise:track", trackId)
	return cacheaside.FetchOrCompute(ctx, repo.store, key, exerciseExpiration,
		func(ctx context.Context) ([]domain.Exercise, error) {
			exercises, err := repo.dao.ListByTrack(ctx, trackId)
			if err != nil {
				return nil, err
			}
			// 空列表不缓存，免得后面加了练习还要等缓存过期
			if len(exercises) == 0 {
				return nil, ErrRecordNotFound
			}
			return slice.Map(exercises, func(idx int, src dao.Exercise) domain.Exercise {
				return domain.Exercise{
					Id:        src.Id,
					Name:      src.Name,
					Level:     src.Level,
					MaxPoints: src.MaxPoints,
				}
			}), nil
		})
}

func (repo *CachedExerciseRepository) Detail(ctx context.Context, id string) (domain.Exercise, error) {
	key := cacheaside.Key("exercise:detail", id)
	return cacheaside.FetchOrCompute(ctx, repo.store, key, exerciseExpiration,
		func(ctx context.Context) (domain.Exercise, error) {
			e, err := repo.dao.GetById(ctx, id)
			if err != nil {
				return domain.Exercise{}, err
			}
			return domain.Exercise{
				Id:           e.Id,
				Name:         e.Name,
				Level:        e.Level,
				MaxPoints:    e.MaxPoints,
				MinPoints:    e.MinPoints,
				Instructions: e.Instructions,
				BaseCode:     e.BaseCode,
			}, nil
		})
}

func (repo *CachedExerciseRepository) TestMeta(ctx context.Context, id string) (domain.TestMeta, error) {
	key := cacheaside.Key("exercise:tests", id)
	return cacheaside.FetchOrCompute(ctx, repo.store, key, exerciseExpiration,
		func(ctx context.Context) (domain.TestMeta, error) {
			e, err := repo.dao.GetById(ctx, id)
			if err != nil {
				return domain.TestMeta{}, err
			}
			return domain.TestMeta{
				Tests:     e.Tests,
				Language:  e.Language,
				MinPoints: e.MinPoints,
				MaxPoints: e.MaxPoints,
				TrackId:   e.TrackId,
			}, nil
		})
}

func (repo *CachedExerciseRepository) CountByTrack(ctx context.Context, trackId string) (int64, error) {
	return repo.dao.CountByTrack(ctx, trackId)
}

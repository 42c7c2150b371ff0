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

package service

import (
	"context"
	"errors"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
)

// 目前首页最多展示这么多学习路线
const trackLimit = 10

//go:generate mockgen -source=./catalog.go -package=svcmocks -destination=mocks/catalog.mock.go CatalogService
type CatalogService interface {
	ListTracks(ctx context.Context) ([]domain.Track, error)
	JoinTrack(ctx context.Context, uid, trackId string) error
	ListExercises(ctx context.Context, trackId string) ([]domain.Exercise, error)
	Detail(ctx context.Context, id string) (domain.Exercise, error)
}

var _ CatalogService = &catalogService{}

type catalogService struct {
	repo repository.ExerciseRepository
}

func NewCatalogService(repo repository.ExerciseRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListTracks(ctx context.Context) ([]domain.Track, error) {
	tracks, err := s.repo.ListTracks(ctx, trackLimit)
	if err != nil {
		return nil, bizerr.Conflict("获取学习路线失败", err)
	}
	if len(tracks) == 0 {
		return nil, bizerr.Conflict("暂时没有学习路线", nil)
	}
	return tracks, nil
}

func (s *catalogService) JoinTrack(ctx context.Context, uid, trackId string) error {
	err := s.repo.JoinTrack(ctx, uid, trackId)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicateRecord):
		return bizerr.AlreadyProcessed("已经加入了该学习路线", err)
	default:
		return bizerr.Conflict("加入学习路线失败", err)
	}
}

func (s *catalogService) ListExercises(ctx context.Context, trackId string) ([]domain.Exercise, error) {
	exercises, err := s.repo.ListByTrack(ctx, trackId)
	if err != nil {
		return nil, bizerr.Conflict("获取练习列表失败", err)
	}
	return exercises, nil
}

func (s *catalogService) Detail(ctx context.Context, id string) (domain.Exercise, error) {
	e, err := s.repo.Detail(ctx, id)
	switch {
	case err == nil:
		return e, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Exercise{}, bizerr.NotFound("练习不存在", err)
	default:
		return domain.Exercise{}, bizerr.Conflict("获取练习详情失败", err)
	}
}

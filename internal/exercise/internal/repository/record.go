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

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -package=repomocks -destination=mocks/record.mock.go RecordRepository
type RecordRepository interface {
	Find(ctx context.Context, uid, exerciseId string) (domain.Record, error)
	// Save 记录活动并写入做题记录，返回数据库里面最新的记录
	Save(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error)
	SumPoints(ctx context.Context, uid string) (int64, error)
	CountCompleted(ctx context.Context, uid string) (int64, error)
	CountCompletedInTrack(ctx context.Context, uid, trackId string) (int64, error)

	ActivityTimes(ctx context.Context, uid string) ([]int64, error)
}

var _ RecordRepository = &recordRepository{}

type recordRepository struct {
	dao dao.RecordDAO
}

func NewRecordRepository(d dao.RecordDAO) RecordRepository {
	return &recordRepository{dao: d}
}

func (repo *recordRepository) Find(ctx context.Context, uid, exerciseId string) (domain.Record, error) {
	r, err := repo.dao.Find(ctx, uid, exerciseId)
	if err != nil {
		return domain.Record{}, err
	}
	return repo.toDomain(r), nil
}

func (repo *recordRepository) Save(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error) {
	res, err := repo.dao.Save(ctx, dao.UserActivity{
		Uid:        a.Uid,
		ExerciseId: a.ExerciseId,
		Language:   a.Language,
		Tid:        a.Tid,
	}, repo.toEntity(r))
	if err != nil {
		return domain.Record{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *recordRepository) SumPoints(ctx context.Context, uid string) (int64, error) {
	return repo.dao.SumPoints(ctx, uid)
}

func (repo *recordRepository) CountCompleted(ctx context.Context, uid string) (int64, error) {
	return repo.dao.CountCompleted(ctx, uid)
}

func (repo *recordRepository) CountCompletedInTrack(ctx context.Context, uid, trackId string) (int64, error) {
	return repo.dao.CountCompletedInTrack(ctx, uid, trackId)
}

func (repo *recordRepository) ActivityTimes(ctx context.Context, uid string) ([]int64, error) {
	return repo.dao.ActivityTimes(ctx, uid)
}

func (repo *recordRepository) toDomain(r dao.UserExercise) domain.Record {
	return domain.Record{
		Uid:          r.Uid,
		ExerciseId:   r.ExerciseId,
		TrackId:      r.TrackId,
		Code:         r.Code,
		IsCompleted:  r.IsCompleted,
		PointsEarned: r.PointsEarned,
		Utime:        r.Utime,
	}
}

func (repo *recordRepository) toEntity(r domain.Record) dao.UserExercise {
	return dao.UserExercise{
		Uid:          r.Uid,
		ExerciseId:   r.ExerciseId,
		TrackId:      r.TrackId,
		Code:         r.Code,
		IsCompleted:  r.IsCompleted,
		PointsEarned: r.PointsEarned,
	}
}

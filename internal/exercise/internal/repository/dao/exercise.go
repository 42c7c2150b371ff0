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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrDuplicateRecord = errors.New("记录已经存在")
)

// 唯一索引冲突
const uniqueIndexErrNo uint16 = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

//go:generate mockgen -source=./exercise.go -package=daomocks -destination=mocks/exercise.mock.go ExerciseDAO
type ExerciseDAO interface {
	ListTracks(ctx context.Context, limit int) ([]Track, error)
	JoinTrack(ctx context.Context, ut UserTrack) error
	ListByTrack(ctx context.Context, trackId string) ([]Exercise, error)
	GetById(ctx context.Context, id string) (Exercise, error)
	CountByTrack(ctx context.Context, trackId string) (int64, error)
}

var _ ExerciseDAO = &GORMExerciseDAO{}

type GORMExerciseDAO struct {
	db *egorm.Component
}

func NewGORMExerciseDAO(db *egorm.Component) ExerciseDAO {
	return &GORMExerciseDAO{db: db}
}

func (dao *GORMExerciseDAO) ListTracks(ctx context.Context, limit int) ([]Track, error) {
	var res []Track
	err := dao.db.WithContext(ctx).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMExerciseDAO) JoinTrack(ctx context.Context, ut UserTrack) error {
	now := time.Now().UnixMilli()
	ut.Ctime = now
	ut.Utime = now
	err := dao.db.WithContext(ctx).Create(&ut).Error
	if isDuplicate(err) {
		return ErrDuplicateRecord
	}
	return err
}

func (dao *GORMExerciseDAO) ListByTrack(ctx context.Context, trackId string) ([]Exercise, error) {
	var res []Exercise
	err := dao.db.WithContext(ctx).
		Select("id", "name", "level", "max_points").
		Where("track_id = ?", trackId).
		Find(&res).Error
	return res, err
}

func (dao *GORMExerciseDAO) GetById(ctx context.Context, id string) (Exercise, error) {
	var res Exercise
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMExerciseDAO) CountByTrack(ctx context.Context, trackId string) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Exercise{}).
		Where("track_id = ?", trackId).
		Count(&cnt).Error
	return cnt, err
}

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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./record.go -package=daomocks -destination=mocks/record.mock.go RecordDAO
type RecordDAO interface {
	Find(ctx context.Context, uid, exerciseId string) (UserExercise, error)
	// Save 在同一个事务里面记录做题活动并写入做题记录，返回写入之后数据库里面的记录。
	// 记录不存在就插入，存在且没有完成就更新，已经完成的记录不会被修改。
	// 分数只会变高不会变低
	Save(ctx context.Context, a UserActivity, r UserExercise) (UserExercise, error)
	SumPoints(ctx context.Context, uid string) (int64, error)
	CountCompleted(ctx context.Context, uid string) (int64, error)
	CountCompletedInTrack(ctx context.Context, uid, trackId string) (int64, error)

	ActivityTimes(ctx context.Context, uid string) ([]int64, error)
}

var _ RecordDAO = &GORMRecordDAO{}

type GORMRecordDAO struct {
	db *egorm.Component
}

func NewGORMRecordDAO(db *egorm.Component) RecordDAO {
	return &GORMRecordDAO{db: db}
}

func (dao *GORMRecordDAO) Find(ctx context.Context, uid, exerciseId string) (UserExercise, error) {
	var res UserExercise
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND exercise_id = ?", uid, exerciseId).
		First(&res).Error
	return res, err
}

func (dao *GORMRecordDAO) Save(ctx context.Context, a UserActivity, r UserExercise) (UserExercise, error) {
	now := time.Now().UnixMilli()
	var res UserExercise
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a.Ctime = now
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		r.Ctime = now
		r.Utime = now
		err := tx.Clauses(clause.OnConflict{
			// is_completed 必须最后赋值，前面的条件读到的才是旧值
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "code"}, Value: gorm.Expr("IF(is_completed, code, VALUES(code))")},
				{Column: clause.Column{Name: "points_earned"}, Value: gorm.Expr("IF(is_completed, points_earned, GREATEST(points_earned, VALUES(points_earned)))")},
				{Column: clause.Column{Name: "utime"}, Value: gorm.Expr("IF(is_completed, utime, VALUES(utime))")},
				{Column: clause.Column{Name: "is_completed"}, Value: gorm.Expr("is_completed OR VALUES(is_completed)")},
			},
		}).Create(&r).Error
		if err != nil {
			return err
		}
		return tx.Where("uid = ? AND exercise_id = ?", r.Uid, r.ExerciseId).First(&res).Error
	})
	return res, err
}

func (dao *GORMRecordDAO) SumPoints(ctx context.Context, uid string) (int64, error) {
	var sum int64
	err := dao.db.WithContext(ctx).Model(&UserExercise{}).
		Select("COALESCE(SUM(points_earned), 0)").
		Where("uid = ?", uid).
		Scan(&sum).Error
	return sum, err
}

func (dao *GORMRecordDAO) CountCompleted(ctx context.Context, uid string) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&UserExercise{}).
		Where("uid = ? AND is_completed = ?", uid, true).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMRecordDAO) CountCompletedInTrack(ctx context.Context, uid, trackId string) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&UserExercise{}).
		Where("uid = ? AND track_id = ? AND is_completed = ?", uid, trackId, true).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMRecordDAO) ActivityTimes(ctx context.Context, uid string) ([]int64, error) {
	var res []int64
	err := dao.db.WithContext(ctx).Model(&UserActivity{}).
		Where("uid = ?", uid).
		Order("ctime ASC").
		Pluck("ctime", &res).Error
	return res, err
}

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
	"github.com/ecodeclub/ekit/sqlx"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Track{},
		&Exercise{},
		&UserTrack{},
		&UserExercise{},
		&UserActivity{},
	)
}

type Track struct {
	Id   string                    `gorm:"primaryKey;type:varchar(36)"`
	Name string                    `gorm:"type:varchar(256)"`
	Tags sqlx.JsonColumn[[]string] `gorm:"type:text;comment:标签"`
	Logo string                    `gorm:"type:varchar(512)"`

	Ctime int64
	Utime int64
}

type Exercise struct {
	Id           string `gorm:"primaryKey;type:varchar(36)"`
	Name         string `gorm:"type:varchar(256)"`
	Level        int
	MaxPoints    int
	MinPoints    int
	Instructions string `gorm:"type:text"`
	BaseCode     string `gorm:"type:text"`
	Tests        string `gorm:"type:text"`
	Language     string `gorm:"type:varchar(32)"`
	TrackId      string `gorm:"type:varchar(36);index"`

	Ctime int64
	Utime int64
}

type UserTrack struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Uid     string `gorm:"type:varchar(36);uniqueIndex:uid_track_id"`
	TrackId string `gorm:"type:varchar(36);uniqueIndex:uid_track_id"`

	Ctime int64
	Utime int64
}

// UserExercise 用户做题记录，查询一定会带上 uid，所以 uid 在唯一索引最前面
type UserExercise struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	Uid          string `gorm:"type:varchar(36);uniqueIndex:uid_exercise_id;index:uid_track_id"`
	ExerciseId   string `gorm:"type:varchar(36);uniqueIndex:uid_exercise_id"`
	TrackId      string `gorm:"type:varchar(36);index:uid_track_id"`
	Code         string `gorm:"type:text"`
	IsCompleted  bool
	PointsEarned int

	Ctime int64
	Utime int64
}

type UserActivity struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	Uid        string `gorm:"type:varchar(36);index"`
	ExerciseId string `gorm:"type:varchar(36)"`
	Language   string `gorm:"type:varchar(32)"`
	Tid        string `gorm:"type:varchar(64)"`
	Ctime      int64
}

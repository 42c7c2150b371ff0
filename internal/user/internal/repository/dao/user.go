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

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate uid 唯一索引冲突
var ErrUserDuplicate = errors.New("用户已经存在")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) error
	Count(ctx context.Context) (int64, error)
	InsertRank(ctx context.Context, r UserRank) error
	FindByUid(ctx context.Context, uid string) (User, error)
	FindRank(ctx context.Context, uid string) (UserRank, error)
	// Delete 同时删除用户和排名，返回删除的用户数
	Delete(ctx context.Context, uid string) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) error {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	return duplicate(ud.db.WithContext(ctx).Create(&u).Error)
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&cnt).Error
	return cnt, err
}

func (ud *GORMUserDAO) InsertRank(ctx context.Context, r UserRank) error {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	return duplicate(ud.db.WithContext(ctx).Create(&r).Error)
}

func (ud *GORMUserDAO) FindByUid(ctx context.Context, uid string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "uid = ?", uid).Error
	return u, err
}

func (ud *GORMUserDAO) FindRank(ctx context.Context, uid string) (UserRank, error) {
	var r UserRank
	err := ud.db.WithContext(ctx).First(&r, "uid = ?", uid).Error
	return r, err
}

func (ud *GORMUserDAO) Delete(ctx context.Context, uid string) (int64, error) {
	var cnt int64
	err := ud.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("uid = ?", uid).Delete(&User{})
		if res.Error != nil {
			return res.Error
		}
		cnt = res.RowsAffected
		return tx.Where("uid = ?", uid).Delete(&UserRank{}).Error
	})
	return cnt, err
}

func duplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrUserDuplicate
		}
	}
	return err
}

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

	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
	"github.com/onecode-labs/onecode/internal/user/internal/domain"
	"github.com/onecode-labs/onecode/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

const createdAtExpiration = 5 * time.Minute

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	// Create 重复创建返回 ErrUserDuplicate
	Create(ctx context.Context, uid string) error
	Count(ctx context.Context) (int64, error)
	// CreateRank 重复创建返回 ErrUserDuplicate
	CreateRank(ctx context.Context, r domain.Rank) error
	Rank(ctx context.Context, uid string) (domain.Rank, error)
	CreatedAt(ctx context.Context, uid string) (time.Time, error)
	// Delete 用户不存在返回 ErrUserNotFound
	Delete(ctx context.Context, uid string) error
}

// CachedUserRepository 只缓存注册时间，排名会被定时任务刷新
type CachedUserRepository struct {
	dao   dao.UserDAO
	store *cacheaside.Store
}

func NewCachedUserRepository(d dao.UserDAO, store *cacheaside.Store) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		store: store,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, uid string) error {
	return ur.dao.Insert(ctx, dao.User{Uid: uid})
}

func (ur *CachedUserRepository) Count(ctx context.Context) (int64, error) {
	return ur.dao.Count(ctx)
}

func (ur *CachedUserRepository) CreateRank(ctx context.Context, r domain.Rank) error {
	return ur.dao.InsertRank(ctx, dao.UserRank{
		Uid:        r.Uid,
		GlobalRank: r.GlobalRank,
		WeeklyRank: r.WeeklyRank,
	})
}

func (ur *CachedUserRepository) Rank(ctx context.Context, uid string) (domain.Rank, error) {
	r, err := ur.dao.FindRank(ctx, uid)
	if err != nil {
		return domain.Rank{}, err
	}
	return domain.Rank{
		Uid:        r.Uid,
		GlobalRank: r.GlobalRank,
		WeeklyRank: r.WeeklyRank,
	}, nil
}

func (ur *CachedUserRepository) CreatedAt(ctx context.Context, uid string) (time.Time, error) {
	ctime, err := cacheaside.FetchOrCompute(ctx, ur.store, createdAtKey(uid), createdAtExpiration,
		func(ctx context.Context) (int64, error) {
			u, err := ur.dao.FindByUid(ctx, uid)
			return u.Ctime, err
		})
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ctime), nil
}

func (ur *CachedUserRepository) Delete(ctx context.Context, uid string) error {
	cnt, err := ur.dao.Delete(ctx, uid)
	if err != nil {
		return err
	}
	ur.store.Invalidate(ctx, createdAtKey(uid))
	if cnt == 0 {
		return ErrUserNotFound
	}
	return nil
}

func createdAtKey(uid string) string {
	return cacheaside.Key("user:ctime", uid)
}

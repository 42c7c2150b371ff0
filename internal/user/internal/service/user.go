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

	"github.com/gotomicro/ego/core/elog"
	"github.com/onecode-labs/onecode/internal/exercise"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/onecode-labs/onecode/internal/user/internal/domain"
	"github.com/onecode-labs/onecode/internal/user/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// CreateProfile 新用户的排名就是当前的用户总数
	CreateProfile(ctx context.Context, uid string) (domain.Profile, error)
	Profile(ctx context.Context, uid string) (domain.Profile, error)
	DeleteProfile(ctx context.Context, uid string) error
}

type userService struct {
	repo     repository.UserRepository
	progress exercise.ProgressService
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, progress exercise.ProgressService) UserService {
	return &userService{
		repo:     repo,
		progress: progress,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) CreateProfile(ctx context.Context, uid string) (domain.Profile, error) {
	err := svc.repo.Create(ctx, uid)
	switch {
	case errors.Is(err, repository.ErrUserDuplicate):
		// 用户已经有了，继续尝试创建排名
		svc.logger.Warn("用户已经存在", elog.String("uid", uid))
	case err != nil:
		return domain.Profile{}, bizerr.Conflict("创建用户失败", err)
	}

	cnt, err := svc.repo.Count(ctx)
	if err != nil {
		return domain.Profile{}, bizerr.Conflict("创建用户失败", err)
	}

	err = svc.repo.CreateRank(ctx, domain.Rank{
		Uid:        uid,
		GlobalRank: cnt,
		WeeklyRank: cnt,
	})
	switch {
	case errors.Is(err, repository.ErrUserDuplicate):
		return domain.Profile{}, bizerr.AlreadyProcessed("用户已经创建", err)
	case err != nil:
		return domain.Profile{}, bizerr.Conflict("创建用户失败", err)
	}
	return domain.Profile{
		Uid:        uid,
		GlobalRank: cnt,
		WeeklyRank: cnt,
	}, nil
}

func (svc *userService) Profile(ctx context.Context, uid string) (domain.Profile, error) {
	var (
		eg  errgroup.Group
		res = domain.Profile{Uid: uid}
	)
	eg.Go(func() error {
		r, err := svc.repo.Rank(ctx, uid)
		res.GlobalRank, res.WeeklyRank = r.GlobalRank, r.WeeklyRank
		return err
	})
	eg.Go(func() error {
		var err error
		res.CreatedAt, err = svc.repo.CreatedAt(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalPoints, err = svc.progress.TotalPoints(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Solved, err = svc.progress.Solved(ctx, uid)
		return err
	})
	eg.Go(func() error {
		streak, err := svc.progress.Streak(ctx, uid)
		res.Streak, res.LongestStreak = streak.Current, streak.Longest
		return err
	})
	err := eg.Wait()
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domain.Profile{}, bizerr.NotFound("用户不存在", err)
	case err != nil:
		return domain.Profile{}, bizerr.Conflict("获取个人主页失败", err)
	}
	return res, nil
}

func (svc *userService) DeleteProfile(ctx context.Context, uid string) error {
	err := svc.repo.Delete(ctx, uid)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return bizerr.NotFound("用户不存在", err)
	case err != nil:
		return bizerr.Conflict("删除用户失败", err)
	}
	svc.progress.InvalidatePoints(ctx, uid)
	return nil
}

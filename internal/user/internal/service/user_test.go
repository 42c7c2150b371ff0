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
	"testing"
	"time"

	"github.com/onecode-labs/onecode/internal/exercise"
	exercisemocks "github.com/onecode-labs/onecode/internal/exercise/mocks"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/onecode-labs/onecode/internal/user/internal/domain"
	"github.com/onecode-labs/onecode/internal/user/internal/repository"
	repomocks "github.com/onecode-labs/onecode/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const uid = "5f0c7c1e-8a57-4d3b-9a59-2b6f4b0c9d11"

func TestUserService_CreateProfile(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.UserRepository

		wantProfile domain.Profile
		wantKind    bizerr.Kind
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), uid).Return(nil)
				repo.EXPECT().Count(gomock.Any()).Return(int64(12), nil)
				repo.EXPECT().CreateRank(gomock.Any(), domain.Rank{
					Uid: uid, GlobalRank: 12, WeeklyRank: 12,
				}).Return(nil)
				return repo
			},
			wantProfile: domain.Profile{Uid: uid, GlobalRank: 12, WeeklyRank: 12},
		},
		{
			name: "用户已经存在但是没有排名",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), uid).Return(repository.ErrUserDuplicate)
				repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
				repo.EXPECT().CreateRank(gomock.Any(), domain.Rank{
					Uid: uid, GlobalRank: 3, WeeklyRank: 3,
				}).Return(nil)
				return repo
			},
			wantProfile: domain.Profile{Uid: uid, GlobalRank: 3, WeeklyRank: 3},
		},
		{
			name: "创建用户失败",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), uid).Return(errors.New("mock db error"))
				return repo
			},
			wantKind: bizerr.KindConflict,
		},
		{
			name: "统计用户数失败",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), uid).Return(nil)
				repo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantKind: bizerr.KindConflict,
		},
		{
			name: "排名已经存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), uid).Return(repository.ErrUserDuplicate)
				repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
				repo.EXPECT().CreateRank(gomock.Any(), gomock.Any()).Return(repository.ErrUserDuplicate)
				return repo
			},
			wantKind: bizerr.KindAlreadyProcessed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), exercisemocks.NewMockProgressService(ctrl))
			p, err := svc.CreateProfile(context.Background(), uid)
			assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
			assert.Equal(t, tc.wantProfile, p)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	ctime := time.UnixMilli(1700000000000)
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService)

		wantProfile domain.Profile
		wantKind    bizerr.Kind
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Rank(gomock.Any(), uid).
					Return(domain.Rank{Uid: uid, GlobalRank: 5, WeeklyRank: 2}, nil)
				repo.EXPECT().CreatedAt(gomock.Any(), uid).Return(ctime, nil)
				progress := exercisemocks.NewMockProgressService(ctrl)
				progress.EXPECT().TotalPoints(gomock.Any(), uid).Return(int64(120), nil)
				progress.EXPECT().Solved(gomock.Any(), uid).Return(int64(7), nil)
				progress.EXPECT().Streak(gomock.Any(), uid).
					Return(exercise.Streak{Current: 2, Longest: 6}, nil)
				return repo, progress
			},
			wantProfile: domain.Profile{
				Uid:           uid,
				GlobalRank:    5,
				WeeklyRank:    2,
				TotalPoints:   120,
				Solved:        7,
				Streak:        2,
				LongestStreak: 6,
				CreatedAt:     ctime,
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Rank(gomock.Any(), uid).
					Return(domain.Rank{}, repository.ErrUserNotFound)
				repo.EXPECT().CreatedAt(gomock.Any(), uid).
					Return(time.Time{}, repository.ErrUserNotFound).AnyTimes()
				progress := exercisemocks.NewMockProgressService(ctrl)
				progress.EXPECT().TotalPoints(gomock.Any(), uid).Return(int64(0), nil).AnyTimes()
				progress.EXPECT().Solved(gomock.Any(), uid).Return(int64(0), nil).AnyTimes()
				progress.EXPECT().Streak(gomock.Any(), uid).Return(exercise.Streak{}, nil).AnyTimes()
				return repo, progress
			},
			wantKind: bizerr.KindNotFound,
		},
		{
			name: "积分查询失败",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Rank(gomock.Any(), uid).
					Return(domain.Rank{Uid: uid, GlobalRank: 5, WeeklyRank: 2}, nil)
				repo.EXPECT().CreatedAt(gomock.Any(), uid).Return(ctime, nil)
				progress := exercisemocks.NewMockProgressService(ctrl)
				progress.EXPECT().TotalPoints(gomock.Any(), uid).
					Return(int64(0), errors.New("mock db error"))
				progress.EXPECT().Solved(gomock.Any(), uid).Return(int64(7), nil)
				progress.EXPECT().Streak(gomock.Any(), uid).Return(exercise.Streak{}, nil)
				return repo, progress
			},
			wantKind: bizerr.KindConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			p, err := svc.Profile(context.Background(), uid)
			assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
			assert.Equal(t, tc.wantProfile, p)
		})
	}
}

func TestUserService_DeleteProfile(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService)

		wantKind bizerr.Kind
	}{
		{
			name: "删除成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Delete(gomock.Any(), uid).Return(nil)
				progress := exercisemocks.NewMockProgressService(ctrl)
				progress.EXPECT().InvalidatePoints(gomock.Any(), uid)
				return repo, progress
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Delete(gomock.Any(), uid).Return(repository.ErrUserNotFound)
				return repo, exercisemocks.NewMockProgressService(ctrl)
			},
			wantKind: bizerr.KindNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, exercise.ProgressService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Delete(gomock.Any(), uid).Return(errors.New("mock db error"))
				return repo, exercisemocks.NewMockProgressService(ctrl)
			},
			wantKind: bizerr.KindConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			err := svc.DeleteProfile(context.Background(), uid)
			assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
		})
	}
}

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

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	repomocks "github.com/onecode-labs/onecode/internal/exercise/internal/repository/mocks"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
	"github.com/onecode-labs/onecode/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestComputeStreak(t *testing.T) {
	t.Parallel()
	const d int64 = 20000
	testCases := []struct {
		name  string
		days  []int64
		today int64
		want  domain.Streak
	}{
		{
			name:  "没有活动",
			today: d,
			want:  domain.Streak{},
		},
		{
			name:  "连续三天",
			days:  []int64{d, d + 1, d + 2},
			today: d + 2,
			want:  domain.Streak{Current: 3, Longest: 3},
		},
		{
			name:  "中间断了",
			days:  []int64{d, d + 2},
			today: d + 2,
			want:  domain.Streak{Current: 1, Longest: 1},
		},
		{
			name:  "今天还没做题，昨天做了",
			days:  []int64{d, d + 1},
			today: d + 2,
			want:  domain.Streak{Current: 2, Longest: 2},
		},
		{
			name:  "最近一次是前天",
			days:  []int64{d, d + 1},
			today: d + 3,
			want:  domain.Streak{Current: 0, Longest: 2},
		},
		{
			name:  "同一天多次，乱序",
			days:  []int64{d + 5, d, d + 1, d + 5, d + 2, d + 1, d + 6},
			today: d + 6,
			want:  domain.Streak{Current: 2, Longest: 3},
		},
		{
			name:  "未来的日期不算",
			days:  []int64{d, d + 1, d + 3},
			today: d + 1,
			want:  domain.Streak{Current: 2, Longest: 2},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, computeStreak(tc.days, tc.today))
		})
	}
}

func newProgressService(exerciseRepo *repomocks.MockExerciseRepository,
	recordRepo *repomocks.MockRecordRepository,
	mc *test.MemoryCache, now time.Time, loc *time.Location) *progressService {
	svc := NewProgressService(exerciseRepo, recordRepo, cacheaside.NewStore(mc), loc).(*progressService)
	svc.now = func() time.Time {
		return now
	}
	return svc
}

func TestProgressService_Streak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("UTC+8", 8*3600)
	at := func(day, hour int) int64 {
		return time.Date(2024, time.March, day, hour, 30, 0, 0, loc).UnixMilli()
	}
	recordRepo := repomocks.NewMockRecordRepository(ctrl)
	// 东八区 3 月 2 日 01:30 在 UTC 下还是 3 月 1 日，日期要按配置的时区算
	recordRepo.EXPECT().ActivityTimes(gomock.Any(), "u1").
		Return([]int64{at(1, 10), at(2, 1), at(3, 23), at(4, 1)}, nil).Times(1)

	mc := test.NewMemoryCache()
	svc := newProgressService(repomocks.NewMockExerciseRepository(ctrl), recordRepo, mc,
		time.Date(2024, time.March, 4, 12, 0, 0, 0, loc), loc)
	for i := 0; i < 2; i++ {
		streak, err := svc.Streak(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.Streak{Current: 4, Longest: 4}, streak)
	}
	assert.Equal(t, 24*time.Hour, mc.TTL("progress:streak:u1"))
}

func TestProgressService_TotalPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := repomocks.NewMockRecordRepository(ctrl)
	gomock.InOrder(
		recordRepo.EXPECT().SumPoints(gomock.Any(), "u1").Return(int64(0), nil),
		recordRepo.EXPECT().SumPoints(gomock.Any(), "u1").Return(int64(10), nil),
	)
	recordRepo.EXPECT().SumPoints(gomock.Any(), "u2").Return(int64(0), errors.New("mock db error"))

	mc := test.NewMemoryCache()
	svc := newProgressService(repomocks.NewMockExerciseRepository(ctrl), recordRepo, mc, time.Now(), time.Local)
	ctx := context.Background()

	// 0 分也要缓存住
	for i := 0; i < 2; i++ {
		points, err := svc.TotalPoints(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), points)
	}
	svc.InvalidatePoints(ctx, "u1")
	points, err := svc.TotalPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), points)

	_, err = svc.TotalPoints(ctx, "u2")
	assert.True(t, bizerr.Is(err, bizerr.KindConflict))
	assert.False(t, mc.Has("progress:points:u2"))
}

func TestProgressService_TrackProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exerciseRepo := repomocks.NewMockExerciseRepository(ctrl)
	exerciseRepo.EXPECT().CountByTrack(gomock.Any(), "t1").Return(int64(4), nil).Times(1)
	exerciseRepo.EXPECT().CountByTrack(gomock.Any(), "t2").Return(int64(2), nil).Times(1)
	exerciseRepo.EXPECT().CountByTrack(gomock.Any(), "empty").Return(int64(0), nil).Times(1)

	recordRepo := repomocks.NewMockRecordRepository(ctrl)
	gomock.InOrder(
		recordRepo.EXPECT().CountCompletedInTrack(gomock.Any(), "u1", "t1").Return(int64(1), nil),
		recordRepo.EXPECT().CountCompletedInTrack(gomock.Any(), "u1", "t1").Return(int64(2), nil),
	)
	recordRepo.EXPECT().CountCompletedInTrack(gomock.Any(), "u1", "t2").Return(int64(2), nil).Times(1)

	mc := test.NewMemoryCache()
	svc := newProgressService(exerciseRepo, recordRepo, mc, time.Now(), time.Local)
	ctx := context.Background()

	res, err := svc.TrackProgress(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackProgress{TrackId: "t1", Total: 4, Percentage: 25}, res)

	// 不同的学习路线互不影响
	res, err = svc.TrackProgress(ctx, "u1", "t2")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackProgress{TrackId: "t2", Total: 2, Percentage: 100}, res)

	res, err = svc.TrackProgress(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, float64(25), res.Percentage)

	svc.OnCompleted(ctx, "u1", "t1")
	res, err = svc.TrackProgress(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, float64(50), res.Percentage)

	res, err = svc.TrackProgress(ctx, "u1", "empty")
	require.NoError(t, err)
	assert.Equal(t, domain.TrackProgress{TrackId: "empty"}, res)
}

func TestProgressService_Solved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := repomocks.NewMockRecordRepository(ctrl)
	recordRepo.EXPECT().CountCompleted(gomock.Any(), "u1").Return(int64(3), nil).Times(1)

	mc := test.NewMemoryCache()
	svc := newProgressService(repomocks.NewMockExerciseRepository(ctrl), recordRepo, mc, time.Now(), time.Local)
	for i := 0; i < 2; i++ {
		cnt, err := svc.Solved(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), cnt)
	}
	assert.Equal(t, 5*time.Minute, mc.TTL("progress:solved:u1"))

	// 完成事件不会让完成数量失效
	svc.OnCompleted(context.Background(), "u1", "t1")
	cnt, err := svc.Solved(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}

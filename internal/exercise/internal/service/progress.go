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
	"sort"
	"time"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
)

const (
	pointsKeyPrefix       = "progress:points"
	trackTotalKeyPrefix   = "progress:track_total"
	trackPercentKeyPrefix = "progress:track_percent"
	streakKeyPrefix       = "progress:streak"
	solvedKeyPrefix       = "progress:solved"

	dayExpiration    = 24 * time.Hour
	solvedExpiration = 5 * time.Minute
)

// ProgressService 个人主页和学习路线上的统计数据，全部可以从数据库重新算出来
//
//go:generate mockgen -source=./progress.go -package=svcmocks -destination=mocks/progress.mock.go ProgressService
type ProgressService interface {
	TotalPoints(ctx context.Context, uid string) (int64, error)
	TrackExerciseCount(ctx context.Context, trackId string) (int64, error)
	TrackProgress(ctx context.Context, uid, trackId string) (domain.TrackProgress, error)
	Streak(ctx context.Context, uid string) (domain.Streak, error)
	Solved(ctx context.Context, uid string) (int64, error)

	// InvalidatePoints 做题记录有变化的时候调用
	InvalidatePoints(ctx context.Context, uid string)
	// OnCompleted 用户完成了某个练习
	OnCompleted(ctx context.Context, uid, trackId string)
}

var _ ProgressService = &progressService{}

type progressService struct {
	exerciseRepo repository.ExerciseRepository
	recordRepo   repository.RecordRepository
	store        *cacheaside.Store
	// 计算连续天数的时候按照这个时区来切分日期
	loc *time.Location
	now func() time.Time
}

func NewProgressService(exerciseRepo repository.ExerciseRepository,
	recordRepo repository.RecordRepository,
	store *cacheaside.Store,
	loc *time.Location) ProgressService {
	return &progressService{
		exerciseRepo: exerciseRepo,
		recordRepo:   recordRepo,
		store:        store,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *progressService) TotalPoints(ctx context.Context, uid string) (int64, error) {
	return cacheaside.FetchOrCompute(ctx, s.store, cacheaside.Key(pointsKeyPrefix, uid), dayExpiration,
		func(ctx context.Context) (int64, error) {
			sum, err := s.recordRepo.SumPoints(ctx, uid)
			if err != nil {
				return 0, bizerr.Conflict("统计积分失败", err)
			}
			return sum, nil
		})
}

func (s *progressService) TrackExerciseCount(ctx context.Context, trackId string) (int64, error) {
	return cacheaside.FetchOrCompute(ctx, s.store, cacheaside.Key(trackTotalKeyPrefix, trackId), dayExpiration,
		func(ctx context.Context) (int64, error) {
			cnt, err := s.exerciseRepo.CountByTrack(ctx, trackId)
			if err != nil {
				return 0, bizerr.Conflict("统计练习数量失败", err)
			}
			return cnt, nil
		})
}

func (s *progressService) TrackProgress(ctx context.Context, uid, trackId string) (domain.TrackProgress, error) {
	total, err := s.TrackExerciseCount(ctx, trackId)
	if err != nil {
		return domain.TrackProgress{}, err
	}
	percentage, err := cacheaside.FetchOrCompute(ctx, s.store,
		cacheaside.Key(trackPercentKeyPrefix, uid, trackId), dayExpiration,
		func(ctx context.Context) (float64, error) {
			if total == 0 {
				return 0, nil
			}
			completed, err := s.recordRepo.CountCompletedInTrack(ctx, uid, trackId)
			if err != nil {
				return 0, bizerr.Conflict("统计完成进度失败", err)
			}
			return float64(completed) / float64(total) * 100, nil
		})
	if err != nil {
		return domain.TrackProgress{}, err
	}
	return domain.TrackProgress{
		TrackId:    trackId,
		Total:      total,
		Percentage: percentage,
	}, nil
}

func (s *progressService) Streak(ctx context.Context, uid string) (domain.Streak, error) {
	return cacheaside.FetchOrCompute(ctx, s.store, cacheaside.Key(streakKeyPrefix, uid), dayExpiration,
		func(ctx context.Context) (domain.Streak, error) {
			ctimes, err := s.recordRepo.ActivityTimes(ctx, uid)
			if err != nil {
				return domain.Streak{}, bizerr.Conflict("查询做题记录失败", err)
			}
			days := make([]int64, 0, len(ctimes))
			for _, ctime := range ctimes {
				days = append(days, s.dayOf(time.UnixMilli(ctime)))
			}
			return computeStreak(days, s.dayOf(s.now())), nil
		})
}

func (s *progressService) Solved(ctx context.Context, uid string) (int64, error) {
	return cacheaside.FetchOrCompute(ctx, s.store, cacheaside.Key(solvedKeyPrefix, uid), solvedExpiration,
		func(ctx context.Context) (int64, error) {
			cnt, err := s.recordRepo.CountCompleted(ctx, uid)
			if err != nil {
				return 0, bizerr.Conflict("统计完成的练习失败", err)
			}
			return cnt, nil
		})
}

func (s *progressService) InvalidatePoints(ctx context.Context, uid string) {
	s.store.Invalidate(ctx, cacheaside.Key(pointsKeyPrefix, uid))
}

// OnCompleted 只刷新学习路线进度，完成数量靠 5 分钟过期
func (s *progressService) OnCompleted(ctx context.Context, uid, trackId string) {
	s.store.Invalidate(ctx, cacheaside.Key(trackPercentKeyPrefix, uid, trackId))
}

// dayOf 把时间换算成 loc 时区下的日期，用距离 1970-01-01 的天数表示
func (s *progressService) dayOf(t time.Time) int64 {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// computeStreak days 里面可以有重复，不要求有序
func computeStreak(days []int64, today int64) domain.Streak {
	if len(days) == 0 {
		return domain.Streak{}
	}
	distinct := make([]int64, 0, len(days))
	seen := make(map[int64]struct{}, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i] < distinct[j]
	})

	var res domain.Streak
	// 从今天往前数，中间断了一天以上就停
	prev := today
	for i := len(distinct) - 1; i >= 0; i-- {
		gap := prev - distinct[i]
		if gap < 0 {
			// 时钟偏差导致的未来日期不算
			continue
		}
		if gap > 1 {
			break
		}
		res.Current++
		prev = distinct[i]
	}

	running := 0
	for i, d := range distinct {
		if i > 0 && d-distinct[i-1] == 1 {
			running++
		} else {
			running = 1
		}
		res.Longest = max(res.Longest, running)
	}
	return res
}

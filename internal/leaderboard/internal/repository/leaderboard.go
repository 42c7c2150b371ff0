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

	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
)

// 排行榜由定时任务计算好之后写进 Redis，这里只读
const (
	globalKey = "globalTop20"
	weeklyKey = "weeklyTop20"
)

type LeaderboardRepository interface {
	// Global 没有数据的时候返回 false
	Global(ctx context.Context) (string, bool, error)
	Weekly(ctx context.Context) (string, bool, error)
}

type CacheLeaderboardRepository struct {
	cache cacheaside.Cache
}

func NewCacheLeaderboardRepository(cache cacheaside.Cache) LeaderboardRepository {
	return &CacheLeaderboardRepository{cache: cache}
}

func (repo *CacheLeaderboardRepository) Global(ctx context.Context) (string, bool, error) {
	return repo.cache.Get(ctx, globalKey)
}

func (repo *CacheLeaderboardRepository) Weekly(ctx context.Context) (string, bool, error) {
	return repo.cache.Get(ctx, weeklyKey)
}

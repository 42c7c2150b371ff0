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

//go:build wireinject

package leaderboard

import (
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/google/wire"
	"github.com/onecode-labs/onecode/internal/leaderboard/internal/repository"
	"github.com/onecode-labs/onecode/internal/leaderboard/internal/service"
	"github.com/onecode-labs/onecode/internal/leaderboard/internal/web"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
	"github.com/redis/go-redis/v9"
)

func InitModule(rc redis.Cmdable) *Module {
	wire.Build(
		initCache,
		repository.NewCacheLeaderboardRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

// 排行榜的 key 不带业务前缀
func initCache(rc redis.Cmdable) cacheaside.Cache {
	return cacheaside.NewECache(eredis.NewCache(rc))
}

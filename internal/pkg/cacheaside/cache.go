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

package cacheaside

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

// Cache 缓存存储需要提供的能力，值统一以字符串形式传输，序列化由 Store 负责
//
//go:generate mockgen -source=./cache.go -package=cachemocks -destination=mocks/cache.mock.go Cache
type Cache interface {
	// Get 第二个返回值表示 key 是否存在
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, val string, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ Cache = &ECache{}

// ECache 基于 ecache 的实现，线上是 redis
type ECache struct {
	ec ecache.Cache
}

func NewECache(ec ecache.Cache) *ECache {
	return &ECache{ec: ec}
}

func (c *ECache) Get(ctx context.Context, key string) (string, bool, error) {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return "", false, nil
	}
	if val.Err != nil {
		return "", false, val.Err
	}
	str, err := val.AsString()
	if err != nil {
		return "", false, err
	}
	return str, true, nil
}

func (c *ECache) Set(ctx context.Context, key string, val string, expiration time.Duration) error {
	return c.ec.Set(ctx, key, val, expiration)
}

func (c *ECache) Delete(ctx context.Context, keys ...string) error {
	_, err := c.ec.Delete(ctx, keys...)
	return err
}

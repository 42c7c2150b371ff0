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
	"encoding/json"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

// Store 旁路缓存。缓存里的所有数据都可以从数据库重新算出来，
// 所以缓存出任何问题都只当作未命中处理，不会影响调用方。
type Store struct {
	cache  Cache
	logger *elog.Component
}

func NewStore(cache Cache) *Store {
	return &Store{
		cache:  cache,
		logger: elog.DefaultLogger,
	}
}

// entry 显式标记"有值"，这样 0、false 之类的零值也能被正常缓存
type entry struct {
	V json.RawMessage `json:"v"`
}

// FetchOrCompute 先查缓存，命中并且能反序列化就直接返回；
// 否则调用 compute，把结果写回缓存。compute 返回的错误不会被缓存。
func FetchOrCompute[T any](ctx context.Context, s *Store, key string, ttl time.Duration,
	compute func(ctx context.Context) (T, error)) (T, error) {
	if val, ok := lookup[T](ctx, s, key); ok {
		return val, nil
	}
	val, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if er := save(ctx, s, key, val, ttl); er != nil {
		s.logger.Error("回写缓存失败", elog.String("key", key), elog.FieldErr(er))
	}
	return val, nil
}

func lookup[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var zero T
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("查询缓存失败", elog.String("key", key), elog.FieldErr(err))
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var e entry
	if err = json.Unmarshal([]byte(raw), &e); err != nil || len(e.V) == 0 {
		return zero, false
	}
	var val T
	if err = json.Unmarshal(e.V, &val); err != nil {
		return zero, false
	}
	return val, true
}

func save[T any](ctx context.Context, s *Store, key string, val T, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化缓存数据失败")
	}
	payload, err := json.Marshal(entry{V: data})
	if err != nil {
		return errors.Wrap(err, "序列化缓存数据失败")
	}
	return s.cache.Set(ctx, key, string(payload), ttl)
}

// Invalidate 删除缓存。key 不存在不算错误，删除失败只记录日志。
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Error("删除缓存失败", elog.Any("keys", keys), elog.FieldErr(err))
	}
}

// Key 拼接缓存的 key，形如 namespace:id1:id2
func Key(namespace string, ids ...string) string {
	var sb strings.Builder
	sb.WriteString(namespace)
	for _, id := range ids {
		sb.WriteByte(':')
		sb.WriteString(id)
	}
	return sb.String()
}

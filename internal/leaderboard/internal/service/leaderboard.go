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
	"encoding/json"

	"github.com/onecode-labs/onecode/internal/leaderboard/internal/repository"
)

//go:generate mockgen -source=./leaderboard.go -package=svcmocks -destination=mocks/leaderboard.mock.go Service
type Service interface {
	// Global 全站前 20 名，还没有生成的时候返回 nil
	Global(ctx context.Context) (json.RawMessage, error)
	Weekly(ctx context.Context) (json.RawMessage, error)
}

type service struct {
	repo repository.LeaderboardRepository
}

func NewService(repo repository.LeaderboardRepository) Service {
	return &service{repo: repo}
}

func (s *service) Global(ctx context.Context) (json.RawMessage, error) {
	return blob(s.repo.Global(ctx))
}

func (s *service) Weekly(ctx context.Context) (json.RawMessage, error) {
	return blob(s.repo.Weekly(ctx))
}

// blob 原样透传；不是 JSON 的时候当成字符串返回
func blob(val string, ok bool, err error) (json.RawMessage, error) {
	if err != nil || !ok {
		return nil, err
	}
	if json.Valid([]byte(val)) {
		return json.RawMessage(val), nil
	}
	return json.Marshal(val)
}

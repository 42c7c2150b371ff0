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

package web

import (
	"github.com/google/uuid"
	"github.com/onecode-labs/onecode/internal/user/internal/domain"
)

// UidReq 用户 ID 由认证服务生成，必须是 UUID v4
type UidReq struct {
	Uid string `json:"uid"`
}

func (r UidReq) valid() bool {
	id, err := uuid.Parse(r.Uid)
	return err == nil && id.Version() == 4
}

type Profile struct {
	Uid           string `json:"uid"`
	GlobalRank    int64  `json:"globalRank"`
	WeeklyRank    int64  `json:"weeklyRank"`
	TotalPoints   int64  `json:"totalPoints"`
	Solved        int64  `json:"solved"`
	Streak        int    `json:"streak"`
	LongestStreak int    `json:"longestStreak"`
	// CreatedAt 毫秒时间戳
	CreatedAt int64 `json:"createdAt,omitempty"`
}

func newProfile(p domain.Profile) Profile {
	res := Profile{
		Uid:           p.Uid,
		GlobalRank:    p.GlobalRank,
		WeeklyRank:    p.WeeklyRank,
		TotalPoints:   p.TotalPoints,
		Solved:        p.Solved,
		Streak:        p.Streak,
		LongestStreak: p.LongestStreak,
	}
	if !p.CreatedAt.IsZero() {
		res.CreatedAt = p.CreatedAt.UnixMilli()
	}
	return res
}

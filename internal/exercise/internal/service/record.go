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
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
)

// RecordManager 管理用户在每个练习上唯一的那条记录。
// 写入是按照 (uid, exercise_id) 唯一索引做的 upsert，并发的首次提交不会互相覆盖，
// 已经完成的记录也不会被后来的提交修改。
//
//go:generate mockgen -source=./record.go -package=svcmocks -destination=mocks/record.mock.go RecordManager
type RecordManager interface {
	// Read 只用来判断走哪个分支，没有记录或者出错都返回 nil
	Read(ctx context.Context, uid, exerciseId string) *domain.Record
	// Save 记录这次做题活动，同时插入或者更新做题记录，返回写入之后的记录。
	// 返回的记录已经完成而传入的没有完成，说明并发的提交先完成了练习
	Save(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error)
}

var _ RecordManager = &recordManager{}

type recordManager struct {
	repo   repository.RecordRepository
	logger *elog.Component
}

func NewRecordManager(repo repository.RecordRepository) RecordManager {
	return &recordManager{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (m *recordManager) Read(ctx context.Context, uid, exerciseId string) *domain.Record {
	r, err := m.repo.Find(ctx, uid, exerciseId)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			m.logger.Warn("查询做题记录失败",
				elog.String("uid", uid),
				elog.String("exerciseId", exerciseId),
				elog.FieldErr(err))
		}
		return nil
	}
	return &r
}

func (m *recordManager) Save(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error) {
	res, err := m.repo.Save(ctx, a, r)
	if err != nil {
		return domain.Record{}, bizerr.Conflict("保存做题记录失败", err)
	}
	return res, nil
}

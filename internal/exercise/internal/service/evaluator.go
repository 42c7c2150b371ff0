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
	"encoding/base64"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/event"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	"github.com/onecode-labs/onecode/internal/judge"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
)

//go:generate mockgen -source=./evaluator.go -package=svcmocks -destination=mocks/evaluator.mock.go EvaluatorService
type EvaluatorService interface {
	// Submit 用隐藏的测试跑一遍用户的代码，决定这次提交算不算完成。
	// 已经完成的练习再提交不会改变任何数据。
	Submit(ctx context.Context, sub domain.Submission) (domain.SubmissionResult, error)
}

var _ EvaluatorService = &evaluatorService{}

type evaluatorService struct {
	exerciseRepo repository.ExerciseRepository
	records      RecordManager
	progress     ProgressService
	judge        judge.Client
	producer     event.CompletionEventProducer
	logger       *elog.Component
}

func NewEvaluatorService(exerciseRepo repository.ExerciseRepository,
	records RecordManager,
	progress ProgressService,
	judgeClient judge.Client,
	producer event.CompletionEventProducer) EvaluatorService {
	return &evaluatorService{
		exerciseRepo: exerciseRepo,
		records:      records,
		progress:     progress,
		judge:        judgeClient,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

func (s *evaluatorService) Submit(ctx context.Context, sub domain.Submission) (domain.SubmissionResult, error) {
	userCode, err := base64.StdEncoding.DecodeString(sub.Code)
	if err != nil {
		return domain.SubmissionResult{}, bizerr.BadInput("代码不是合法的 base64 编码", err)
	}

	meta, err := s.exerciseRepo.TestMeta(ctx, sub.ExerciseId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.SubmissionResult{}, bizerr.NotFound("练习不存在", err)
	case err != nil:
		return domain.SubmissionResult{}, bizerr.Conflict("获取练习信息失败", err)
	}

	tests, err := base64.StdEncoding.DecodeString(meta.Tests)
	if err != nil {
		return domain.SubmissionResult{}, bizerr.BadInput("测试代码不是合法的 base64 编码", err)
	}
	// 用户代码在前，测试代码在后
	payload := make([]byte, 0, len(userCode)+len(tests)+1)
	payload = append(payload, userCode...)
	payload = append(payload, '\n')
	payload = append(payload, tests...)

	execRes, err := s.judge.Execute(ctx, meta.Language, base64.StdEncoding.EncodeToString(payload))
	if err != nil {
		if bizerr.KindOf(err) != bizerr.KindBadInput {
			err = bizerr.BadInput("代码执行失败", err)
		}
		return domain.SubmissionResult{}, err
	}
	// 编译失败不算一次尝试
	if execRes.Error != nil {
		return domain.SubmissionResult{
			FailedTests: []domain.FailedTest{},
			Error:       execRes.Error,
		}, nil
	}

	var output string
	if execRes.Output != nil {
		output = *execRes.Output
	}
	outcome := ParseTestOutput(output)

	existing := s.records.Read(ctx, sub.Uid, sub.ExerciseId)
	if existing != nil && existing.IsCompleted {
		return storedResult(outcome, *existing), nil
	}

	record := domain.Record{
		Uid:          sub.Uid,
		ExerciseId:   sub.ExerciseId,
		TrackId:      meta.TrackId,
		Code:         sub.Code,
		PointsEarned: min(outcome.TotalPoints, meta.MaxPoints),
		IsCompleted:  outcome.TotalPoints >= meta.MaxPoints,
	}
	stored, err := s.records.Save(ctx, domain.Activity{
		Uid:        sub.Uid,
		ExerciseId: sub.ExerciseId,
		Language:   meta.Language,
		Tid:        shortuuid.New(),
	}, record)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	if stored.IsCompleted && !record.IsCompleted {
		// 并发的提交已经完成了这个练习
		return storedResult(outcome, stored), nil
	}

	s.progress.InvalidatePoints(ctx, sub.Uid)
	if record.IsCompleted {
		s.publishCompletion(ctx, record)
	}
	return domain.SubmissionResult{
		FailedCount: outcome.FailedCount,
		PassedCount: outcome.PassedCount,
		FailedTests: outcome.FailedTests,
		Points:      record.PointsEarned,
		IsCompleted: record.IsCompleted,
	}, nil
}

func (s *evaluatorService) publishCompletion(ctx context.Context, r domain.Record) {
	err := s.producer.Produce(ctx, event.CompletionEvent{
		Uid:        r.Uid,
		ExerciseId: r.ExerciseId,
		TrackId:    r.TrackId,
		Points:     r.PointsEarned,
	})
	if err != nil {
		s.logger.Error("发送练习完成事件失败",
			elog.String("uid", r.Uid),
			elog.String("exerciseId", r.ExerciseId),
			elog.FieldErr(err))
	}
}

func storedResult(outcome domain.TestOutcome, r domain.Record) domain.SubmissionResult {
	return domain.SubmissionResult{
		FailedCount: outcome.FailedCount,
		PassedCount: outcome.PassedCount,
		FailedTests: outcome.FailedTests,
		Points:      r.PointsEarned,
		IsCompleted: r.IsCompleted,
	}
}

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
	"testing"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/event"
	evtmocks "github.com/onecode-labs/onecode/internal/exercise/internal/event/mocks"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	repomocks "github.com/onecode-labs/onecode/internal/exercise/internal/repository/mocks"
	svcmocks "github.com/onecode-labs/onecode/internal/exercise/internal/service/mocks"
	"github.com/onecode-labs/onecode/internal/judge"
	judgemocks "github.com/onecode-labs/onecode/internal/judge/mocks"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evaluatorMocks struct {
	exerciseRepo *repomocks.MockExerciseRepository
	records      *svcmocks.MockRecordManager
	progress     *svcmocks.MockProgressService
	judge        *judgemocks.MockClient
	producer     *evtmocks.MockCompletionEventProducer
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestEvaluatorService_Submit(t *testing.T) {
	userCode := b64("def add(a, b):\n    return a + b")
	meta := domain.TestMeta{
		Tests:     b64("run_tests()"),
		Language:  "Python",
		MinPoints: 1,
		MaxPoints: 10,
		TrackId:   "t1",
	}
	wantPayload := b64("def add(a, b):\n    return a + b\nrun_tests()")
	sub := domain.Submission{Uid: "u1", ExerciseId: "e1", Code: userCode}

	output := func(s string) judge.Result {
		return judge.Result{Output: &s}
	}

	testCases := []struct {
		name   string
		sub    domain.Submission
		before func(m evaluatorMocks)

		wantRes  domain.SubmissionResult
		wantKind bizerr.Kind
	}{
		{
			name:   "代码不是 base64",
			sub:    domain.Submission{Uid: "u1", ExerciseId: "e1", Code: "不是base64!"},
			before: func(m evaluatorMocks) {},

			wantKind: bizerr.KindBadInput,
		},
		{
			name: "练习不存在",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").
					Return(domain.TestMeta{}, repository.ErrRecordNotFound)
			},
			wantKind: bizerr.KindNotFound,
		},
		{
			name: "查询练习失败",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").
					Return(domain.TestMeta{}, errors.New("mock db error"))
			},
			wantKind: bizerr.KindConflict,
		},
		{
			name: "执行服务失败",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(judge.Result{}, errors.New("connection refused"))
			},
			wantKind: bizerr.KindBadInput,
		},
		{
			name: "编译失败不记录任何东西",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				compileErr := "SyntaxError: invalid syntax"
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(judge.Result{Error: &compileErr}, nil)
			},
			wantRes: domain.SubmissionResult{
				FailedTests: []domain.FailedTest{},
				Error:       strPtr("SyntaxError: invalid syntax"),
			},
		},
		{
			name: "已经完成的练习只返回之前的结果",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:3:TestCase1\nFailed:TestCase2:oops"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(&domain.Record{
					Uid:          "u1",
					ExerciseId:   "e1",
					IsCompleted:  true,
					PointsEarned: 10,
				})
			},
			wantRes: domain.SubmissionResult{
				FailedCount: 1,
				PassedCount: 1,
				FailedTests: []domain.FailedTest{{Name: "TestCase2", Hint: strPtr("oops")}},
				Points:      10,
				IsCompleted: true,
			},
		},
		{
			name: "第一次提交就完成，分数不超过上限",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:10:TestCase1\nPassed:5:TestCase2"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(nil)
				record := domain.Record{
					Uid:          "u1",
					ExerciseId:   "e1",
					TrackId:      "t1",
					Code:         userCode,
					IsCompleted:  true,
					PointsEarned: 10,
				}
				m.records.EXPECT().Save(gomock.Any(), gomock.Any(), record).
					DoAndReturn(func(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error) {
						assert.Equal(t, "u1", a.Uid)
						assert.Equal(t, "e1", a.ExerciseId)
						assert.Equal(t, "Python", a.Language)
						assert.NotEmpty(t, a.Tid)
						return r, nil
					})
				m.progress.EXPECT().InvalidatePoints(gomock.Any(), "u1")
				m.producer.EXPECT().Produce(gomock.Any(), event.CompletionEvent{
					Uid:        "u1",
					ExerciseId: "e1",
					TrackId:    "t1",
					Points:     10,
				}).Return(nil)
			},
			wantRes: domain.SubmissionResult{
				PassedCount: 2,
				FailedTests: []domain.FailedTest{},
				Points:      10,
				IsCompleted: true,
			},
		},
		{
			name: "分数不够，更新已有的记录",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:9:TestCase1\nFailed:TestCase2:"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(&domain.Record{
					Uid:          "u1",
					ExerciseId:   "e1",
					PointsEarned: 4,
				})
				m.records.EXPECT().Save(gomock.Any(), gomock.Any(), domain.Record{
					Uid:          "u1",
					ExerciseId:   "e1",
					TrackId:      "t1",
					Code:         userCode,
					IsCompleted:  false,
					PointsEarned: 9,
				}).Return(domain.Record{Uid: "u1", ExerciseId: "e1", PointsEarned: 9}, nil)
				m.progress.EXPECT().InvalidatePoints(gomock.Any(), "u1")
			},
			wantRes: domain.SubmissionResult{
				PassedCount: 1,
				FailedCount: 1,
				FailedTests: []domain.FailedTest{{Name: "TestCase2"}},
				Points:      9,
				IsCompleted: false,
			},
		},
		{
			name: "并发的提交已经完成了练习",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:5:TestCase1"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(nil)
				m.records.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Record{
						Uid:          "u1",
						ExerciseId:   "e1",
						IsCompleted:  true,
						PointsEarned: 10,
					}, nil)
			},
			wantRes: domain.SubmissionResult{
				PassedCount: 1,
				FailedTests: []domain.FailedTest{},
				Points:      10,
				IsCompleted: true,
			},
		},
		{
			name: "保存记录失败",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:5:TestCase1"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(nil)
				m.records.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Record{}, bizerr.Conflict("保存做题记录失败", errors.New("mock db error")))
			},
			wantKind: bizerr.KindConflict,
		},
		{
			name: "发送事件失败不影响结果",
			sub:  sub,
			before: func(m evaluatorMocks) {
				m.exerciseRepo.EXPECT().TestMeta(gomock.Any(), "e1").Return(meta, nil)
				m.judge.EXPECT().Execute(gomock.Any(), "Python", wantPayload).
					Return(output("Passed:10:TestCase1"), nil)
				m.records.EXPECT().Read(gomock.Any(), "u1", "e1").Return(nil)
				m.records.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Activity, r domain.Record) (domain.Record, error) {
						return r, nil
					})
				m.progress.EXPECT().InvalidatePoints(gomock.Any(), "u1")
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantRes: domain.SubmissionResult{
				PassedCount: 1,
				FailedTests: []domain.FailedTest{},
				Points:      10,
				IsCompleted: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := evaluatorMocks{
				exerciseRepo: repomocks.NewMockExerciseRepository(ctrl),
				records:      svcmocks.NewMockRecordManager(ctrl),
				progress:     svcmocks.NewMockProgressService(ctrl),
				judge:        judgemocks.NewMockClient(ctrl),
				producer:     evtmocks.NewMockCompletionEventProducer(ctrl),
			}
			tc.before(m)
			svc := NewEvaluatorService(m.exerciseRepo, m.records, m.progress, m.judge, m.producer)
			res, err := svc.Submit(context.Background(), tc.sub)
			if tc.wantKind != bizerr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

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
	"testing"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	repomocks "github.com/onecode-labs/onecode/internal/exercise/internal/repository/mocks"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_ListTracks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockExerciseRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ListTracks(gomock.Any(), trackLimit).Return([]domain.Track{{Id: "t1", Name: "Python"}}, nil),
		repo.EXPECT().ListTracks(gomock.Any(), trackLimit).Return(nil, nil),
		repo.EXPECT().ListTracks(gomock.Any(), trackLimit).Return(nil, errors.New("mock db error")),
	)
	svc := NewCatalogService(repo)
	ctx := context.Background()

	tracks, err := svc.ListTracks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Track{{Id: "t1", Name: "Python"}}, tracks)

	_, err = svc.ListTracks(ctx)
	assert.True(t, bizerr.Is(err, bizerr.KindConflict))
	_, err = svc.ListTracks(ctx)
	assert.True(t, bizerr.Is(err, bizerr.KindConflict))
}

func TestCatalogService_JoinTrack(t *testing.T) {
	testCases := []struct {
		name     string
		repoErr  error
		wantKind bizerr.Kind
	}{
		{name: "加入成功"},
		{name: "重复加入", repoErr: repository.ErrDuplicateRecord, wantKind: bizerr.KindAlreadyProcessed},
		{name: "数据库错误", repoErr: errors.New("mock db error"), wantKind: bizerr.KindConflict},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockExerciseRepository(ctrl)
			repo.EXPECT().JoinTrack(gomock.Any(), "u1", "t1").Return(tc.repoErr)
			err := NewCatalogService(repo).JoinTrack(context.Background(), "u1", "t1")
			assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
		})
	}
}

func TestCatalogService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockExerciseRepository(ctrl)
	repo.EXPECT().Detail(gomock.Any(), "e1").Return(domain.Exercise{Id: "e1", Name: "两数之和"}, nil)
	repo.EXPECT().Detail(gomock.Any(), "e404").Return(domain.Exercise{}, repository.ErrRecordNotFound)
	repo.EXPECT().Detail(gomock.Any(), "e500").Return(domain.Exercise{}, errors.New("mock db error"))
	svc := NewCatalogService(repo)
	ctx := context.Background()

	e, err := svc.Detail(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "两数之和", e.Name)
	_, err = svc.Detail(ctx, "e404")
	assert.Equal(t, bizerr.KindNotFound, bizerr.KindOf(err))
	_, err = svc.Detail(ctx, "e500")
	assert.Equal(t, bizerr.KindConflict, bizerr.KindOf(err))
}

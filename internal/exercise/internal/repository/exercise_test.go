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
	"testing"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository/dao"
	daomocks "github.com/onecode-labs/onecode/internal/exercise/internal/repository/dao/mocks"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
	"github.com/onecode-labs/onecode/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedExerciseRepository_TestMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := daomocks.NewMockExerciseDAO(ctrl)
	d.EXPECT().GetById(gomock.Any(), "e1").Return(dao.Exercise{
		Id:        "e1",
		Tests:     "dGVzdHM=",
		Language:  "Python",
		MinPoints: 1,
		MaxPoints: 10,
		TrackId:   "t1",
	}, nil).Times(1)
	d.EXPECT().GetById(gomock.Any(), "e404").Return(dao.Exercise{}, dao.ErrRecordNotFound).Times(2)

	mc := test.NewMemoryCache()
	repo := NewCachedExerciseRepository(d, cacheaside.NewStore(mc))
	want := domain.TestMeta{
		Tests:     "dGVzdHM=",
		Language:  "Python",
		MinPoints: 1,
		MaxPoints: 10,
		TrackId:   "t1",
	}
	for i := 0; i < 2; i++ {
		meta, err := repo.TestMeta(context.Background(), "e1")
		require.NoError(t, err)
		assert.Equal(t, want, meta)
	}
	assert.Equal(t, exerciseExpiration, mc.TTL("exercise:tests:e1"))

	// 找不到不会被缓存
	for i := 0; i < 2; i++ {
		_, err := repo.TestMeta(context.Background(), "e404")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	}
	assert.False(t, mc.Has("exercise:tests:e404"))
}

func TestCachedExerciseRepository_ListByTrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := daomocks.NewMockExerciseDAO(ctrl)
	d.EXPECT().ListByTrack(gomock.Any(), "t1").Return([]dao.Exercise{
		{Id: "e1", Name: "两数之和", Level: 1, MaxPoints: 10},
		{Id: "e2", Name: "反转链表", Level: 2, MaxPoints: 20},
	}, nil).Times(1)
	d.EXPECT().ListByTrack(gomock.Any(), "t2").Return(nil, nil).Times(1)

	mc := test.NewMemoryCache()
	repo := NewCachedExerciseRepository(d, cacheaside.NewStore(mc))
	for i := 0; i < 2; i++ {
		res, err := repo.ListByTrack(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, []domain.Exercise{
			{Id: "e1", Name: "两数之和", Level: 1, MaxPoints: 10},
			{Id: "e2", Name: "反转链表", Level: 2, MaxPoints: 20},
		}, res)
	}

	_, err := repo.ListByTrack(context.Background(), "t2")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.False(t, mc.Has("exercise:track:t2"))
}

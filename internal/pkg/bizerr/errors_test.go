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

package bizerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("mock db error")
	testCases := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "nil",
			err:      nil,
			wantKind: KindUnknown,
		},
		{
			name:     "普通错误",
			err:      cause,
			wantKind: KindUnknown,
		},
		{
			name:     "直接构造",
			err:      Conflict("无法保存记录", cause),
			wantKind: KindConflict,
			wantMsg:  "无法保存记录",
		},
		{
			name:     "被包装过",
			err:      fmt.Errorf("evaluate: %w", NotFound("练习不存在", nil)),
			wantKind: KindNotFound,
			wantMsg:  "练习不存在",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantKind, KindOf(tc.err))
			assert.Equal(t, tc.wantMsg, Message(tc.err))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("mock db error")
	err := BadInput("代码格式错误", cause)
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindBadInput))
	assert.False(t, Is(err, KindConflict))
	assert.False(t, Is(nil, KindUnknown))
}

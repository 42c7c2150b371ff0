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

package exercise

import (
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/event"
	"github.com/onecode-labs/onecode/internal/exercise/internal/service"
	"github.com/onecode-labs/onecode/internal/exercise/internal/web"
)

type Module struct {
	Hdl         *Handler
	ProgressSvc ProgressService
	Consumer    *event.CompletionConsumer
}

// CompletionTopic 练习完成事件的 topic，启动时需要先创建
const CompletionTopic = event.CompletionTopic

type Handler = web.Handler

//go:generate mockgen -source=./internal/service/progress.go -package=exercisemocks -destination=mocks/progress.mock.go ProgressService
type ProgressService = service.ProgressService
type Streak = domain.Streak
type TrackProgress = domain.TrackProgress

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

//go:build wireinject

package exercise

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/onecode-labs/onecode/internal/exercise/internal/event"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository"
	"github.com/onecode-labs/onecode/internal/exercise/internal/repository/dao"
	"github.com/onecode-labs/onecode/internal/exercise/internal/service"
	"github.com/onecode-labs/onecode/internal/exercise/internal/web"
	"github.com/onecode-labs/onecode/internal/judge"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
)

func InitModule(db *egorm.Component,
	store *cacheaside.Store,
	q mq.MQ,
	judgeClient judge.Client,
	loc *time.Location) (*Module, error) {
	wire.Build(
		InitExerciseDAO,
		dao.NewGORMRecordDAO,
		repository.NewCachedExerciseRepository,
		repository.NewRecordRepository,
		service.NewRecordManager,
		service.NewProgressService,
		service.NewCatalogService,
		service.NewEvaluatorService,
		event.NewCompletionEventProducer,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitExerciseDAO(db *egorm.Component) dao.ExerciseDAO {
	InitTableOnce(db)
	return dao.NewGORMExerciseDAO(db)
}

func initConsumer(svc service.ProgressService, q mq.MQ) (*event.CompletionConsumer, error) {
	consumer, err := event.NewCompletionConsumer(q, svc)
	if err != nil {
		return nil, err
	}
	consumer.Start(context.Background())
	return consumer, nil
}

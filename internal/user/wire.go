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

package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/onecode-labs/onecode/internal/exercise"
	"github.com/onecode-labs/onecode/internal/pkg/cacheaside"
	"github.com/onecode-labs/onecode/internal/user/internal/repository"
	"github.com/onecode-labs/onecode/internal/user/internal/repository/dao"
	"github.com/onecode-labs/onecode/internal/user/internal/service"
	"github.com/onecode-labs/onecode/internal/user/internal/web"
)

func InitModule(db *egorm.Component,
	store *cacheaside.Store,
	exModule *exercise.Module) *Module {
	wire.Build(
		InitUserDAO,
		repository.NewCachedUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.FieldsOf(new(*exercise.Module), "ProgressSvc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

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

package ioc

import (
	"github.com/google/wire"
	"github.com/onecode-labs/onecode/internal/exercise"
	"github.com/onecode-labs/onecode/internal/leaderboard"
	"github.com/onecode-labs/onecode/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitStore, InitMQ, InitJudge, InitLocation)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		exercise.InitModule,
		user.InitModule,
		leaderboard.InitModule,
		wire.FieldsOf(new(*exercise.Module), "Hdl"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*leaderboard.Module), "Hdl"),
		initConsumers,
		initGinxServer)
	return new(App), nil
}

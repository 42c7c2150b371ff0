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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/onecode-labs/onecode/internal/exercise"
	"github.com/onecode-labs/onecode/internal/pkg/mqx"
)

// InitMQ 连接 kafka 并确保练习完成事件的 topic 存在
func InitMQ() mq.MQ {
	type Config struct {
		Network              string   `yaml:"network"`
		Addresses            []string `yaml:"addresses"`
		CompletionPartitions int      `yaml:"completionPartitions"`
	}
	cfg := Config{Network: "tcp", CompletionPartitions: 1}
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}

	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err = q.CreateTopic(ctx, exercise.CompletionTopic, cfg.CompletionPartitions)
	if err != nil {
		elog.DefaultLogger.Error("创建练习完成事件 topic 失败",
			elog.String("topic", exercise.CompletionTopic),
			elog.Int("partitions", cfg.CompletionPartitions),
			elog.FieldErr(err))
		panic(err)
	}
	return mqx.NewTracedMQ(q)
}

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

package event

import (
	"context"
	"errors"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/onecode-labs/onecode/internal/pkg/mqx"
)

// CompletionHandler 收到完成事件之后要做的事情
type CompletionHandler interface {
	OnCompleted(ctx context.Context, uid, trackId string)
}

// CompletionConsumer 练习完成之后刷新学习路线进度的缓存
type CompletionConsumer struct {
	consumer *mqx.JSONConsumer[CompletionEvent]
	handler  CompletionHandler
	logger   *elog.Component
}

func NewCompletionConsumer(q mq.MQ, handler CompletionHandler) (*CompletionConsumer, error) {
	const groupID = "progress"
	c, err := mqx.NewJSONConsumer[CompletionEvent](q, CompletionTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &CompletionConsumer{
		consumer: c,
		handler:  handler,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *CompletionConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err == nil {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("停止消费练习完成事件")
				return
			}
			c.logger.Error("消费练习完成事件失败", elog.FieldErr(err))
		}
	}()
}

func (c *CompletionConsumer) Consume(ctx context.Context) error {
	evt, err := c.consumer.Next(ctx)
	if err != nil {
		return err
	}
	c.handler.OnCompleted(ctx, evt.Uid, evt.TrackId)
	return nil
}

func (c *CompletionConsumer) Close() error {
	return c.consumer.Close()
}

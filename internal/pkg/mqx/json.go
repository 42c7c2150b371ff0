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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// Producer 发送 T 类型的事件，统一用 JSON 编码
type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

type JSONProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewJSONProducer[T any](q mq.MQ, topic string) (*JSONProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	return &JSONProducer[T]{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *JSONProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("向topic=%s发送消息失败: %w", p.topic, err)
	}
	return nil
}

// JSONConsumer 读取一条消息并反序列化为 T
type JSONConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
}

func NewJSONConsumer[T any](q mq.MQ, topic, group string) (*JSONConsumer[T], error) {
	c, err := q.Consumer(topic, group)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &JSONConsumer[T]{
		consumer: c,
		topic:    topic,
	}, nil
}

// Next 阻塞直到拿到下一条消息
func (c *JSONConsumer[T]) Next(ctx context.Context) (T, error) {
	var evt T
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return evt, fmt.Errorf("从topic=%s获取消息失败: %w", c.topic, err)
	}
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return evt, fmt.Errorf("解析topic=%s的消息失败: %w", c.topic, err)
	}
	return evt, nil
}

func (c *JSONConsumer[T]) Close() error {
	return c.consumer.Close()
}

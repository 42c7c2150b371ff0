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
)

// Kind 业务错误分类，在服务边界上一次性确定，上层只根据 Kind 做分支
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindBadInput 输入非法，例如 base64 解码失败、判题服务拒绝了代码、语言不支持
	KindBadInput
	// KindNotFound 需要的数据不存在
	KindNotFound
	// KindConflict 存储层出错，调用方可以重试
	KindConflict
	// KindAlreadyProcessed 并发提交导致的重复创建，按成功处理并以最新状态为准
	KindAlreadyProcessed
)

func (k Kind) String() string {
	switch k {
	case KindBadInput:
		return "bad_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAlreadyProcessed:
		return "already_processed"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	// 原始错误只用于诊断
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

func BadInput(msg string, cause error) error {
	return New(KindBadInput, msg, cause)
}

func NotFound(msg string, cause error) error {
	return New(KindNotFound, msg, cause)
}

func Conflict(msg string, cause error) error {
	return New(KindConflict, msg, cause)
}

func AlreadyProcessed(msg string, cause error) error {
	return New(KindAlreadyProcessed, msg, cause)
}

// KindOf 返回错误链上第一个 *Error 的 Kind，nil 或者普通错误返回 KindUnknown
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message 返回可以展示给用户的信息
func Message(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Msg
	}
	return ""
}

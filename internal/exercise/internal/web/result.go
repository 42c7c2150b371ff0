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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/onecode-labs/onecode/internal/exercise/internal/errs"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

// errorResult 把业务错误翻译成响应，只有存储层和未知错误会返回 error
func errorResult(err error) (ginx.Result, error) {
	switch bizerr.KindOf(err) {
	case bizerr.KindBadInput:
		return codeResult(errs.InvalidInput, err), nil
	case bizerr.KindNotFound:
		return codeResult(errs.ExerciseNotFound, err), nil
	case bizerr.KindAlreadyProcessed:
		return codeResult(errs.AlreadyProcessed, err), nil
	case bizerr.KindConflict:
		return ginx.Result{
			Code: errs.DatabaseBusy.Code,
			Msg:  errs.DatabaseBusy.Msg,
		}, err
	default:
		return systemErrorResult, err
	}
}

func codeResult(code errs.ErrorCode, err error) ginx.Result {
	msg := bizerr.Message(err)
	if msg == "" {
		msg = code.Msg
	}
	return ginx.Result{Code: code.Code, Msg: msg}
}

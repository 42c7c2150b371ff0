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

package service

import (
	"strconv"
	"strings"

	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
)

const (
	passedPrefix = "Passed:"
	failedPrefix = "Failed:"
)

// ParseTestOutput 解析执行服务的输出，每行一个测试结果：
//
//	Passed:<分数>:<测试名>
//	Failed:<测试名>:<提示>
//
// 其余的行直接忽略。任何输入都不会出错。
func ParseTestOutput(raw string) domain.TestOutcome {
	res := domain.TestOutcome{
		FailedTests: []domain.FailedTest{},
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, passedPrefix):
			res.PassedCount++
			points, _, _ := strings.Cut(strings.TrimPrefix(line, passedPrefix), ":")
			// 分数不是整数的时候依旧算通过，只是不加分
			if p, err := strconv.Atoi(strings.TrimSpace(points)); err == nil {
				res.TotalPoints += p
			}
		case strings.HasPrefix(line, failedPrefix):
			res.FailedCount++
			// 提示里面可能还有冒号，只切一次
			name, hint, _ := strings.Cut(strings.TrimPrefix(line, failedPrefix), ":")
			ft := domain.FailedTest{Name: name}
			if hint != "" {
				ft.Hint = &hint
			}
			res.FailedTests = append(res.FailedTests, ft)
		}
	}
	res.TotalTestCases = res.PassedCount + res.FailedCount
	return res
}

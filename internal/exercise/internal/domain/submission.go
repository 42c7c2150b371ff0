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

package domain

// Submission 用户的一次提交，Code 是 base64 编码的源代码
type Submission struct {
	Uid        string
	ExerciseId string
	Code       string
}

type FailedTest struct {
	Name string
	// Hint 为空字符串时是 nil
	Hint *string
}

// TestOutcome 从执行服务的输出中解析出来，不落库
type TestOutcome struct {
	TotalTestCases int
	PassedCount    int
	FailedCount    int
	TotalPoints    int
	FailedTests    []FailedTest
}

// Record 用户在某个练习上的完成情况，每个用户每个练习最多一条
type Record struct {
	Uid          string
	ExerciseId   string
	TrackId      string
	Code         string
	IsCompleted  bool
	PointsEarned int
	Utime        int64
}

// Activity 只追加。每次真正跑了测试的提交记一条
type Activity struct {
	Uid        string
	ExerciseId string
	Language   string
	// Tid 本次提交的唯一凭证，方便排查
	Tid   string
	Ctime int64
}

type SubmissionResult struct {
	FailedCount int
	PassedCount int
	FailedTests []FailedTest
	// Error 编译或者运行错误
	Error       *string
	Points      int
	IsCompleted bool
}

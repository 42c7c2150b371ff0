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

type Track struct {
	Id   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	Logo string   `json:"logo"`
}

// Exercise 创建之后就不会再修改
type Exercise struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	MaxPoints    int    `json:"maxPoints"`
	MinPoints    int    `json:"minPoints"`
	Instructions string `json:"instructions"`
	BaseCode     string `json:"baseCode"`
	// Tests 隐藏的测试代码，base64 编码
	Tests    string `json:"tests"`
	Language string `json:"language"`
	TrackId  string `json:"trackId"`
}

// TestMeta 判题需要的练习信息
type TestMeta struct {
	Tests     string `json:"tests"`
	Language  string `json:"language"`
	MinPoints int    `json:"minPoints"`
	MaxPoints int    `json:"maxPoints"`
	TrackId   string `json:"trackId"`
}

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
	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
)

type JoinTrackReq struct {
	Uid     string `json:"uid"`
	TrackId string `json:"trackId"`
}

func (r JoinTrackReq) valid() bool {
	return validUid(r.Uid) && r.TrackId != ""
}

type TrackProgressReq struct {
	Uid     string `json:"uid"`
	TrackId string `json:"trackId"`
}

func (r TrackProgressReq) valid() bool {
	return validUid(r.Uid) && r.TrackId != ""
}

type ExerciseListReq struct {
	TrackId string `json:"trackId"`
}

type ExerciseDetailReq struct {
	Id string `json:"id"`
}

type SubmitReq struct {
	Uid        string `json:"uid"`
	ExerciseId string `json:"exerciseId"`
	// Code 用户代码，base64 编码
	Code string `json:"code"`
}

func (r SubmitReq) valid() bool {
	return validUid(r.Uid) && r.ExerciseId != "" && r.Code != ""
}

// 用户 ID 由认证服务生成，都是 UUID v4
func validUid(uid string) bool {
	id, err := uuid.Parse(uid)
	return err == nil && id.Version() == 4
}

type Track struct {
	Id   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	Logo string   `json:"logo"`
}

func newTracks(tracks []domain.Track) []Track {
	return slice.Map(tracks, func(idx int, src domain.Track) Track {
		return Track{
			Id:   src.Id,
			Name: src.Name,
			Tags: src.Tags,
			Logo: src.Logo,
		}
	})
}

type TrackProgress struct {
	TrackId    string  `json:"trackId"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Exercise struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Level        int    `json:"level,omitempty"`
	MaxPoints    int    `json:"maxPoints"`
	MinPoints    int    `json:"minPoints,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	BaseCode     string `json:"baseCode,omitempty"`
}

func newExercise(e domain.Exercise) Exercise {
	return Exercise{
		Id:           e.Id,
		Name:         e.Name,
		Level:        e.Level,
		MaxPoints:    e.MaxPoints,
		MinPoints:    e.MinPoints,
		Instructions: e.Instructions,
		BaseCode:     e.BaseCode,
	}
}

type FailedTest struct {
	Name string  `json:"name"`
	Hint *string `json:"hint"`
}

type SubmitResult struct {
	FailedCount int          `json:"failedCount"`
	PassedCount int          `json:"passedCount"`
	FailedTests []FailedTest `json:"failedTests"`
	Error       *string      `json:"error"`
	Points      int          `json:"points"`
	IsCompleted bool         `json:"isCompleted"`
}

func newSubmitResult(res domain.SubmissionResult) SubmitResult {
	return SubmitResult{
		FailedCount: res.FailedCount,
		PassedCount: res.PassedCount,
		FailedTests: slice.Map(res.FailedTests, func(idx int, src domain.FailedTest) FailedTest {
			return FailedTest{Name: src.Name, Hint: src.Hint}
		}),
		Error:       res.Error,
		Points:      res.Points,
		IsCompleted: res.IsCompleted,
	}
}

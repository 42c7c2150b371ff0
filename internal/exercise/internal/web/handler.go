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
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/onecode-labs/onecode/internal/exercise/internal/domain"
	"github.com/onecode-labs/onecode/internal/exercise/internal/errs"
	"github.com/onecode-labs/onecode/internal/exercise/internal/service"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	catalogSvc   service.CatalogService
	evaluatorSvc service.EvaluatorService
	progressSvc  service.ProgressService
}

func NewHandler(catalogSvc service.CatalogService,
	evaluatorSvc service.EvaluatorService,
	progressSvc service.ProgressService) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		evaluatorSvc: evaluatorSvc,
		progressSvc:  progressSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	track := server.Group("/track")
	track.GET("/list", ginx.W(h.ListTracks))
	track.POST("/join", ginx.B[JoinTrackReq](h.JoinTrack))
	track.POST("/progress", ginx.B[TrackProgressReq](h.TrackProgress))

	exercise := server.Group("/exercise")
	exercise.POST("/list", ginx.B[ExerciseListReq](h.ListExercises))
	exercise.POST("/detail", ginx.B[ExerciseDetailReq](h.Detail))
	exercise.POST("/submit", ginx.B[SubmitReq](h.Submit))
}

func (h *Handler) ListTracks(ctx *ginx.Context) (ginx.Result, error) {
	tracks, err := h.catalogSvc.ListTracks(ctx)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newTracks(tracks),
	}, nil
}

func (h *Handler) JoinTrack(ctx *ginx.Context, req JoinTrackReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	err := h.catalogSvc.JoinTrack(ctx, req.Uid, req.TrackId)
	if bizerr.Is(err, bizerr.KindAlreadyProcessed) {
		return ginx.Result{
			Code: errs.TrackAlreadyJoin.Code,
			Msg:  errs.TrackAlreadyJoin.Msg,
		}, nil
	}
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) TrackProgress(ctx *ginx.Context, req TrackProgressReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	p, err := h.progressSvc.TrackProgress(ctx, req.Uid, req.TrackId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: TrackProgress{
			TrackId:    p.TrackId,
			Total:      p.Total,
			Percentage: p.Percentage,
		},
	}, nil
}

func (h *Handler) ListExercises(ctx *ginx.Context, req ExerciseListReq) (ginx.Result, error) {
	if req.TrackId == "" {
		return invalidInputResult, nil
	}
	exercises, err := h.catalogSvc.ListExercises(ctx, req.TrackId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: slice.Map(exercises, func(idx int, src domain.Exercise) Exercise {
			return newExercise(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ExerciseDetailReq) (ginx.Result, error) {
	if req.Id == "" {
		return invalidInputResult, nil
	}
	e, err := h.catalogSvc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newExercise(e),
	}, nil
}

// Submit 提交代码，同步等待判题结果
func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	res, err := h.evaluatorSvc.Submit(ctx, domain.Submission{
		Uid:        req.Uid,
		ExerciseId: req.ExerciseId,
		Code:       req.Code,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newSubmitResult(res),
	}, nil
}

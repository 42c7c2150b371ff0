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
	"github.com/gin-gonic/gin"
	"github.com/onecode-labs/onecode/internal/leaderboard/internal/errs"
	"github.com/onecode-labs/onecode/internal/leaderboard/internal/service"
)

var _ ginx.Handler = &Handler{}

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/leaderboard")
	g.GET("/global", ginx.W(h.Global))
	g.GET("/weekly", ginx.W(h.Weekly))
}

func (h *Handler) Global(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Global(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) Weekly(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Weekly(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: res}, nil
}

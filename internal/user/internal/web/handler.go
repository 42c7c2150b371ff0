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
	"github.com/onecode-labs/onecode/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/create", ginx.B[UidReq](h.Create))
	users.POST("/profile", ginx.B[UidReq](h.Profile))
	users.POST("/delete", ginx.B[UidReq](h.Delete))
}

// Create 认证服务注册成功之后调用，创建个人主页和排名
func (h *Handler) Create(ctx *ginx.Context, req UidReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	p, err := h.userSvc.CreateProfile(ctx, req.Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newProfile(p),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, req UidReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	p, err := h.userSvc.Profile(ctx, req.Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newProfile(p),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req UidReq) (ginx.Result, error) {
	if !req.valid() {
		return invalidInputResult, nil
	}
	err := h.userSvc.DeleteProfile(ctx, req.Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

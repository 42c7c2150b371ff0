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

package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/onecode-labs/onecode/internal/exercise"
	"github.com/onecode-labs/onecode/internal/leaderboard"
	"github.com/onecode-labs/onecode/internal/pkg/middleware"
	"github.com/onecode-labs/onecode/internal/user"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(exHdl *exercise.Handler,
	userHdl *user.Handler,
	lbHdl *leaderboard.Handler,
) *egin.Component {
	res := egin.Load("server.http").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.HasSuffix(origin, "1code.dev")
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "onecode").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	exHdl.PublicRoutes(res.Engine)
	userHdl.PublicRoutes(res.Engine)
	lbHdl.PublicRoutes(res.Engine)
	return res
}

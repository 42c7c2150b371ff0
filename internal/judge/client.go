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

package judge

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 每种语言在执行服务上对应的路由
var routes = map[string]string{
	"Python": "compile_py",
	"C++":    "compile_cpp",
}

// Route 返回语言对应的路由，不支持的语言返回空字符串
func Route(language string) string {
	return routes[language]
}

// Result 执行服务的返回。Error 非空说明编译或运行失败
type Result struct {
	Output *string `json:"output"`
	Error  *string `json:"error"`
}

//go:generate mockgen -source=./client.go -package=judgemocks -destination=mocks/judge.mock.go Client
type Client interface {
	// Execute code 是 base64 编码后的源代码，只调用一次，不重试
	Execute(ctx context.Context, language string, code string) (Result, error)
}

type request struct {
	Code string `json:"code"`
}

type response struct {
	Data Result `json:"data"`
}

type HTTPClient struct {
	addr    string
	client  *http.Client
	latency *prometheus.HistogramVec
	logger  *elog.Component
}

func NewHTTPClient(addr string, client *http.Client, reg prometheus.Registerer) *HTTPClient {
	return &HTTPClient{
		addr:   strings.TrimRight(addr, "/"),
		client: client,
		latency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "onecode",
			Subsystem: "judge",
			Name:      "execute_duration_seconds",
			Help:      "调用代码执行服务的耗时",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"language", "status"}),
		logger: elog.DefaultLogger,
	}
}

func (c *HTTPClient) Execute(ctx context.Context, language string, code string) (Result, error) {
	route := Route(language)
	if route == "" {
		return Result{}, bizerr.BadInput(fmt.Sprintf("不支持的语言 %s", language), nil)
	}
	start := time.Now()
	res, err := c.execute(ctx, route, code)
	status := "ok"
	if err != nil {
		status = "failed"
	}
	c.latency.WithLabelValues(language, status).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("调用代码执行服务失败", elog.String("language", language), elog.FieldErr(err))
		return Result{}, bizerr.BadInput("代码执行失败，请检查提交的代码", err)
	}
	return res, nil
}

func (c *HTTPClient) execute(ctx context.Context, route, code string) (Result, error) {
	var res response
	resp := httpx.NewRequest(ctx, http.MethodPost, c.addr+"/"+route).
		Client(c.client).
		JSONBody(request{Code: code}).
		Do()
	if resp.Response != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return Result{}, fmt.Errorf("执行服务返回了非预期的状态码 %d", resp.StatusCode)
		}
	}
	if err := resp.JSONScan(&res); err != nil {
		return Result{}, err
	}
	return res.Data, nil
}

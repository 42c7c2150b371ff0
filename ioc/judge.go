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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/onecode-labs/onecode/internal/judge"
	"github.com/prometheus/client_golang/prometheus"
)

func InitJudge() judge.Client {
	addr := econf.GetString("judge.addr")
	timeout := econf.GetDuration("judge.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return judge.NewHTTPClient(addr, &http.Client{Timeout: timeout}, prometheus.DefaultRegisterer)
}

// InitLocation 连续打卡天数按照这个时区切分日期，默认是服务器时区
func InitLocation() *time.Location {
	name := econf.GetString("progress.location")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/onecode-labs/onecode/internal/pkg/bizerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "compile_py", Route("Python"))
	assert.Equal(t, "compile_cpp", Route("C++"))
	assert.Equal(t, "", Route("Rust"))
}

func TestHTTPClient_Execute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		language string
		handler  http.HandlerFunc

		wantRes  Result
		wantKind bizerr.Kind
		wantErr  bool
	}{
		{
			name:     "运行成功",
			language: "Python",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/compile_py" || r.Method != http.MethodPost {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				var req request
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code != "cHJpbnQoMSk=" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"data":{"output":"Passed:10:TestCase1","error":null}}`))
			},
			wantRes: Result{Output: strPtr("Passed:10:TestCase1")},
		},
		{
			name:     "编译失败",
			language: "C++",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"output":null,"error":"expected ';'"}}`))
			},
			wantRes: Result{Error: strPtr("expected ';'")},
		},
		{
			name:     "执行服务拒绝",
			language: "Python",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"data":{}}`))
			},
			wantErr:  true,
			wantKind: bizerr.KindBadInput,
		},
		{
			name:     "返回的不是 JSON",
			language: "Python",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`oops`))
			},
			wantErr:  true,
			wantKind: bizerr.KindBadInput,
		},
		{
			name:     "不支持的语言",
			language: "Rust",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("不应该调用执行服务")
			},
			wantErr:  true,
			wantKind: bizerr.KindBadInput,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewHTTPClient(server.URL+"/", server.Client(), prometheus.NewRegistry())
			res, err := client.Execute(context.Background(), tc.language, "cHJpbnQoMSk=")
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

// closeCounter 统计响应体有没有被关闭
type closeCounter struct {
	base   http.RoundTripper
	opened atomic.Int64
	closed atomic.Int64
}

func (c *closeCounter) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.opened.Add(1)
	resp.Body = &countingBody{ReadCloser: resp.Body, closed: &c.closed}
	return resp, nil
}

type countingBody struct {
	io.ReadCloser
	closed *atomic.Int64
}

func (b *countingBody) Close() error {
	b.closed.Add(1)
	return b.ReadCloser.Close()
}

func TestHTTPClient_Execute_CloseBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/compile_cpp" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"output":"Passed:10:TestCase1","error":null}}`))
	}))
	defer server.Close()

	counter := &closeCounter{base: server.Client().Transport}
	client := NewHTTPClient(server.URL, &http.Client{Transport: counter}, prometheus.NewRegistry())
	for i := 0; i < 5; i++ {
		_, err := client.Execute(context.Background(), "Python", "cHJpbnQoMSk=")
		require.NoError(t, err)
		_, err = client.Execute(context.Background(), "C++", "cHJpbnQoMSk=")
		require.Error(t, err)
	}
	assert.Equal(t, int64(10), counter.opened.Load())
	assert.Equal(t, counter.opened.Load(), counter.closed.Load())
}

func strPtr(s string) *string {
	return &s
}

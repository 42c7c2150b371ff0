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

package user

import (
	"github.com/onecode-labs/onecode/internal/user/internal/domain"
	"github.com/onecode-labs/onecode/internal/user/internal/service"
	"github.com/onecode-labs/onecode/internal/user/internal/web"
)

type Module struct {
	Hdl *Handler
	Svc UserService
}

type Handler = web.Handler
type Profile = domain.Profile
type UserService = service.UserService

// Copyright 2023 Openfoundry, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"encoding/json"
	"net/http"

	"organizations-building-block/core"
	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//AdminApisHandler handles the admin rest APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

func (h AdminApisHandler) getOrganizations(l *logs.Log, r *http.Request) logs.HTTPResponse {
	organizations, err := h.coreAPIs.Administration.AdmGetOrganizations()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	respData, err := json.Marshal(organizationsToDef(organizations))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) sweepLogoAssets(l *logs.Log, r *http.Request) logs.HTTPResponse {
	deleted, err := h.coreAPIs.Administration.AdmSweepLogoAssets()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeAsset, nil, err, http.StatusInternalServerError, true)
	}

	respData, err := json.Marshal(map[string]int{"deleted": deleted})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

//NewAdminApisHandler creates new admin rest Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}

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
	"io"
	"net/http"
	"strings"

	"organizations-building-block/core"
	"organizations-building-block/core/model"
	"organizations-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	validator "gopkg.in/go-playground/validator.v9"
)

const maxUploadMemory = 10 << 20 // 10 MB held in memory while parsing multipart bodies

//ServicesApisHandler handles the rest APIs implementation
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

func (h ServicesApisHandler) getVersion(l *logs.Log, r *http.Request) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(h.coreAPIs.GetVersion())
}

func (h ServicesApisHandler) createOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createOrganizationRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	organization := model.Organization{Name: requestData.Name,
		Source: requestData.Source, ThirdPartyCompanyID: requestData.ThirdPartyCompanyID}
	if requestData.Domain != nil {
		organization.OrganizationDomain = &model.OrganizationDomain{Domain: *requestData.Domain,
			Configs: []model.AuthConfig{model.DefaultAuthConfig}}
	}

	created, err := h.coreAPIs.Services.SerCreateOrganization(&organization, requestData.CreatorID, requestData.IsSuperAdmin)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	response := organizationToDef(*created)
	respData, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) createDefaultOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createDefaultOrganizationRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	ctx := utils.WithLocale(r.Context(), requestLocale(r))

	user := model.User{ID: requestData.UserID, Name: requestData.UserName}
	created, err := h.coreAPIs.Services.SerCreateDefaultOrganization(ctx, user, requestData.IsSuperAdmin)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	if created == nil {
		//the user joined the existing enterprise organization
		return l.HTTPResponseSuccessMessage("joined existing organization")
	}

	response := organizationToDef(*created)
	respData, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]
	if len(id) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.Services.SerGetOrganization(id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err, http.StatusNotFound, true)
	}

	response := organizationToDef(*organization)
	respData, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getOrganizations(l *logs.Log, r *http.Request) logs.HTTPResponse {
	idsParam := r.URL.Query().Get("ids")
	if len(idsParam) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("ids"), nil, http.StatusBadRequest, false)
	}
	ids := strings.Split(idsParam, ",")

	organizations, err := h.coreAPIs.Services.SerGetOrganizations(ids)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}

	respData, err := json.Marshal(organizationsToDef(organizations))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getEnterpriseOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	organization, err := h.coreAPIs.Services.SerGetOrganizationInEnterpriseMode()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	if organization == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, nil, nil, http.StatusNotFound, false)
	}

	respData, err := json.Marshal(organizationToDef(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getOrganizationBySource(l *logs.Log, r *http.Request) logs.HTTPResponse {
	source := r.URL.Query().Get("source")
	if len(source) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("source"), nil, http.StatusBadRequest, false)
	}
	companyID := r.URL.Query().Get("company_id")
	if len(companyID) == 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("company_id"), nil, http.StatusBadRequest, false)
	}

	organization, err := h.coreAPIs.Services.SerGetOrganizationBySource(source, companyID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	if organization == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"source": source, "company_id": companyID}, nil, http.StatusNotFound, false)
	}

	respData, err := json.Marshal(organizationToDef(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getOrganizationByDomain(l *logs.Log, r *http.Request) logs.HTTPResponse {
	domain := utils.RefererDomain(r.Header.Get("Referer"))
	ctx := utils.WithRefererDomain(r.Context(), domain)

	organization, err := h.coreAPIs.Services.SerGetOrganizationByDomain(ctx)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, &logutils.FieldArgs{"domain": domain}, err, http.StatusBadRequest, true)
	}
	if organization == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"domain": domain}, nil, http.StatusNotFound, false)
	}

	respData, err := json.Marshal(organizationToDef(*organization))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) getOrgCommonSettings(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	settings, err := h.coreAPIs.Services.SerGetOrgCommonSettings(id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganizationCommonSettings, &logutils.FieldArgs{"id": id}, err, http.StatusNotFound, true)
	}

	respData, err := json.Marshal(settings)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganizationCommonSettings, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func (h ServicesApisHandler) updateCommonSettings(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData updateCommonSettingsRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}
	err = validator.New().Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	updated, err := h.coreAPIs.Services.SerUpdateCommonSettings(id, requestData.Key, requestData.Value)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeOrganizationCommonSettings, &logutils.FieldArgs{"id": id}, err, http.StatusInternalServerError, true)
	}

	return updatedResponse(l, updated)
}

func (h ServicesApisHandler) uploadLogo(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionParse, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	file, fileHeader, err := r.FormFile("logo")
	if err != nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, "logo file", nil, err, http.StatusBadRequest, false)
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, "logo file", nil, err, http.StatusBadRequest, false)
	}

	updated, err := h.coreAPIs.Services.SerUploadLogo(id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionSave, "logo", &logutils.FieldArgs{"id": id}, err, http.StatusInternalServerError, true)
	}

	return updatedResponse(l, updated)
}

func (h ServicesApisHandler) deleteLogo(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	updated, err := h.coreAPIs.Services.SerDeleteLogo(id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, "logo", &logutils.FieldArgs{"id": id}, err, http.StatusBadRequest, true)
	}

	return updatedResponse(l, updated)
}

func (h ServicesApisHandler) updateOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData updateOrganizationRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	update := model.OrganizationUpdate{Name: requestData.Name,
		Source: requestData.Source, ThirdPartyCompanyID: requestData.ThirdPartyCompanyID}
	if requestData.Domain != nil {
		update.OrganizationDomain = &model.OrganizationDomain{Domain: *requestData.Domain,
			Configs: []model.AuthConfig{model.DefaultAuthConfig}}
	}

	updated, err := h.coreAPIs.Services.SerUpdateOrganization(id, update)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err, http.StatusInternalServerError, true)
	}

	return updatedResponse(l, updated)
}

func (h ServicesApisHandler) deleteOrganization(l *logs.Log, r *http.Request) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	deleted, err := h.coreAPIs.Services.SerDeleteOrganization(id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err, http.StatusInternalServerError, true)
	}

	respData, err := json.Marshal(map[string]bool{"deleted": deleted})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

func updatedResponse(l *logs.Log, updated bool) logs.HTTPResponse {
	respData, err := json.Marshal(map[string]bool{"updated": updated})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(respData)
}

//requestLocale resolves the caller locale, the Locale header wins over Accept-Language
func requestLocale(r *http.Request) string {
	locale := r.Header.Get("Locale")
	if len(locale) > 0 {
		return locale
	}

	acceptLanguage := r.Header.Get("Accept-Language")
	if len(acceptLanguage) == 0 {
		return ""
	}
	first := strings.Split(acceptLanguage, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}

//NewServicesApisHandler creates new rest services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}

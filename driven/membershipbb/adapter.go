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

package membershipbb

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//Adapter implements the MembershipGateway interface
type Adapter struct {
	host   string
	apiKey string
}

type addMemberRequest struct {
	OrgID  string `json:"org_id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type addMemberResponse struct {
	Added bool `json:"added"`
}

type createGroupRequest struct {
	OrgID     string `json:"org_id"`
	GroupType string `json:"group_type"`
}

//AddMember adds a user as a member of an organization. False means the user
//was already a member.
func (a *Adapter) AddMember(orgID string, userID string, role string) (bool, error) {
	request := addMemberRequest{OrgID: orgID, UserID: userID, Role: role}
	body, err := a.post("/members", request)
	if err != nil {
		return false, err
	}

	var response addMemberResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUnmarshal, logutils.TypeResponseBody, nil, err)
	}
	return response.Added, nil
}

//CreateAllUsersGroup creates the group every organization member belongs to
func (a *Adapter) CreateAllUsersGroup(orgID string) error {
	_, err := a.post("/groups", createGroupRequest{OrgID: orgID, GroupType: "all_users"})
	return err
}

//CreateDevGroup creates the developers group of an organization
func (a *Adapter) CreateDevGroup(orgID string) error {
	_, err := a.post("/groups", createGroupRequest{OrgID: orgID, GroupType: "dev"})
	return err
}

func (a *Adapter) post(path string, request interface{}) ([]byte, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionMarshal, logutils.TypeRequest, nil, err)
	}

	client := &http.Client{}
	req, err := http.NewRequest(http.MethodPost, a.host+path, bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCreate, logutils.TypeRequest, nil, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("MEMBERSHIP-BB-API-KEY", a.apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSend, logutils.TypeRequest, nil, err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionRead, logutils.TypeResponse, nil, err)
	}
	if resp.StatusCode != 200 {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeResponse, &logutils.FieldArgs{"status_code": resp.StatusCode, "error": string(body)})
	}
	return body, nil
}

//NewMembershipBBAdapter creates a new membership building block adapter instance
func NewMembershipBBAdapter(membershipHost string, apiKey string) *Adapter {
	return &Adapter{host: membershipHost, apiKey: apiKey}
}

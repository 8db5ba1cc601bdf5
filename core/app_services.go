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

package core

import (
	"context"
	"time"

	"organizations-building-block/core/model"
	"organizations-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) serCreateDefaultOrganization(ctx context.Context, user model.User, isSuperAdmin bool) (*model.Organization, error) {
	locale := utils.LocaleFromContext(ctx)
	suffix := userOrgSuffix(locale)

	organization := model.Organization{Name: user.Name + suffix, IsAutoGenerated: true}

	//saas mode
	if app.workspaceMode == model.WorkspaceModeSaaS {
		return app.serCreateOrganization(&organization, user.ID, isSuperAdmin)
	}

	//enterprise mode - try to join the existing enterprise organization first
	joined, err := app.joinOrganizationInEnterpriseMode(user.ID)
	if err != nil {
		return nil, err
	}
	if joined {
		//the user became a member of the enterprise organization, no new organization is created
		return nil, nil
	}

	organizationDomain := model.OrganizationDomain{Configs: []model.AuthConfig{model.DefaultAuthConfig}}
	organization.OrganizationDomain = &organizationDomain
	return app.serCreateOrganization(&organization, user.ID, isSuperAdmin)
}

func (app *application) joinOrganizationInEnterpriseMode(userID string) (bool, error) {
	organization, err := app.serGetOrganizationInEnterpriseMode()
	if err != nil {
		return false, err
	}
	if organization == nil {
		return false, nil
	}

	joined, err := app.membership.AddMember(organization.ID, userID, model.MemberRoleMember)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionInsert, "membership", &logutils.FieldArgs{"org_id": organization.ID, "user_id": userID}, err)
	}
	return joined, nil
}

func (app *application) serGetOrganizationInEnterpriseMode() (*model.Organization, error) {
	if app.workspaceMode == model.WorkspaceModeSaaS {
		return nil, nil
	}

	organization, err := app.getByEnterpriseOrgID()
	if err != nil {
		return nil, err
	}
	if organization != nil {
		return organization, nil
	}

	//fall back to the first active organization - the storage orders by date_created,
	//so "first" means the oldest surviving one
	organization, err = app.storage.FindFirstOrganizationByState(model.OrganizationStateActive)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organization, nil
}

func (app *application) getByEnterpriseOrgID() (*model.Organization, error) {
	if len(app.enterpriseOrgID) == 0 {
		return nil, nil
	}

	organization, err := app.storage.FindOrganization(app.enterpriseOrgID, "")
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": app.enterpriseOrgID}, err)
	}
	if organization == nil {
		return nil, nil
	}
	if organization.State == model.OrganizationStateDeleted {
		//the configuration points at a destroyed tenant - fail instead of silently falling back
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganization, &logutils.FieldArgs{"enterprise_org_id": app.enterpriseOrgID, "state": model.OrganizationStateDeleted})
	}
	return organization, nil
}

func (app *application) serCreateOrganization(organization *model.Organization, creatorID string, isSuperAdmin bool) (*model.Organization, error) {
	if organization == nil || len(organization.ID) > 0 {
		//creation must not be used to re-import existing identities
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeArg, logutils.StringArgs(string(model.TypeOrganization)))
	}

	organization.CommonSettings = model.OrganizationCommonSettings{
		model.PasswordResetEmailTemplateKey: model.PasswordResetEmailTemplateDefault,
	}
	organization.State = model.OrganizationStateActive

	newOrg, err := app.storage.InsertOrganization(*organization)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}

	err = app.onOrgCreated(creatorID, newOrg, isSuperAdmin)
	if err != nil {
		//the organization stays persisted but under-provisioned - surfaced to the caller for retry
		return nil, err
	}
	return newOrg, nil
}

func (app *application) onOrgCreated(userID string, newOrg *model.Organization, isSuperAdmin bool) error {
	err := app.membership.CreateAllUsersGroup(newOrg.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, "all users group", &logutils.FieldArgs{"org_id": newOrg.ID}, err)
	}

	err = app.membership.CreateDevGroup(newOrg.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, "dev group", &logutils.FieldArgs{"org_id": newOrg.ID}, err)
	}

	return app.setOrgAdmin(userID, newOrg, isSuperAdmin)
}

func (app *application) setOrgAdmin(userID string, newOrg *model.Organization, isSuperAdmin bool) error {
	role := model.MemberRoleAdmin
	if isSuperAdmin {
		role = model.MemberRoleSuperAdmin
	}
	_, err := app.membership.AddMember(newOrg.ID, userID, role)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, "membership", &logutils.FieldArgs{"org_id": newOrg.ID, "user_id": userID, "role": role}, err)
	}
	return nil
}

func (app *application) serGetOrganization(id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id, model.OrganizationStateActive)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id})
	}
	return organization, nil
}

func (app *application) serGetOrganizations(ids []string) ([]model.Organization, error) {
	organizations, err := app.storage.FindOrganizations(ids, model.OrganizationStateActive)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizations, nil
}

func (app *application) serGetOrgCommonSettings(orgID string) (model.OrganizationCommonSettings, error) {
	organization, err := app.serGetOrganization(orgID)
	if err != nil {
		return nil, err
	}
	return organization.CommonSettings, nil
}

func (app *application) serGetOrganizationBySource(source string, companyID string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganizationBySource(source, companyID, model.OrganizationStateActive)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"source": source, "company_id": companyID}, err)
	}
	return organization, nil
}

func (app *application) serGetOrganizationByDomain(ctx context.Context) (*model.Organization, error) {
	domain := utils.RefererDomainFromContext(ctx)
	if len(domain) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, "referer domain", nil)
	}

	organization, err := app.storage.FindOrganizationByDomain(domain, model.OrganizationStateActive)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"domain": domain}, err)
	}
	return organization, nil
}

func (app *application) serUploadLogo(orgID string, fileName string, contentType string, data []byte) (bool, error) {
	uploadedAsset, err := app.assets.UploadAsset(fileName, contentType, data, app.configCenter.LogoMaxSizeKB())
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionSave, model.TypeAsset, &logutils.FieldArgs{"org_id": orgID}, err)
	}

	organization, err := app.serGetOrganization(orgID)
	if err != nil {
		return false, err
	}
	prevAssetID := organization.LogoAssetID

	//the new reference must be durably recorded before the old asset is destroyed -
	//a crash in between leaves at worst an orphaned old asset, never a broken reference
	updated, err := app.storage.UpdateOrganizationLogoAsset(orgID, &uploadedAsset.ID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}

	if prevAssetID != nil {
		err = app.assets.DeleteAsset(*prevAssetID)
		if err != nil {
			return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypeAsset, &logutils.FieldArgs{"id": *prevAssetID}, err)
		}
	}
	return updated, nil
}

func (app *application) serDeleteLogo(orgID string) (bool, error) {
	organization, err := app.serGetOrganization(orgID)
	if err != nil {
		return false, err
	}

	if organization.LogoAssetID == nil {
		return false, errors.ErrorData(logutils.StatusMissing, model.TypeAsset, nil)
	}
	prevAssetID := *organization.LogoAssetID

	asset, err := app.assets.FindAsset(prevAssetID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeAsset, &logutils.FieldArgs{"id": prevAssetID}, err)
	}
	if asset == nil {
		return false, errors.ErrorData(logutils.StatusMissing, model.TypeAsset, &logutils.FieldArgs{"id": prevAssetID})
	}

	//the asset is removed before the reference is cleared - the inverse order from upload.
	//This keeps the behavior of the original service.
	err = app.assets.DeleteAsset(asset.ID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypeAsset, &logutils.FieldArgs{"id": asset.ID}, err)
	}

	updated, err := app.storage.UpdateOrganizationLogoAsset(orgID, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}
	return updated, nil
}

func (app *application) serUpdateOrganization(orgID string, update model.OrganizationUpdate) (bool, error) {
	updated, err := app.storage.UpdateOrganization(orgID, update)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}
	return updated, nil
}

func (app *application) serUpdateCommonSettings(orgID string, key string, value interface{}) (bool, error) {
	//caller-observed wall clock at call time, written together with the value in one update
	updateTime := time.Now().UnixMilli()

	updated, err := app.storage.UpdateOrganizationCommonSettings(orgID, key, value, updateTime)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationCommonSettings, &logutils.FieldArgs{"id": orgID, "key": key}, err)
	}
	return updated, nil
}

func (app *application) serDeleteOrganization(orgID string) (bool, error) {
	updated, err := app.storage.UpdateOrganizationState(orgID, model.OrganizationStateDeleted)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}

	if updated {
		//deletion is authoritative once the state flips, the event is a downstream hint
		event := model.OrgDeletedEvent{OrgID: orgID, Time: time.Now().UTC()}
		app.events.PublishOrganizationDeleted(event)
		app.notifyListeners(event)
	}
	return updated, nil
}

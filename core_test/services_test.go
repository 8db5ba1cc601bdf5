package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	core "organizations-building-block/core"
	"organizations-building-block/core/model"
	genmocks "organizations-building-block/mocks"
	"organizations-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

var errFake = errors.New("fake error")

type testAdapters struct {
	storage      *genmocks.Storage
	assets       *genmocks.AssetGateway
	membership   *genmocks.MembershipGateway
	events       *genmocks.EventsPublisher
	configCenter *genmocks.ConfigCenter
}

func buildCoreAPIs(workspaceMode string, enterpriseOrgID string) (*core.APIs, *testAdapters) {
	adapters := &testAdapters{storage: &genmocks.Storage{}, assets: &genmocks.AssetGateway{},
		membership: &genmocks.MembershipGateway{}, events: &genmocks.EventsPublisher{},
		configCenter: &genmocks.ConfigCenter{}}

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("local", "1.0.0", "build", workspaceMode, enterpriseOrgID,
		adapters.storage, adapters.assets, adapters.membership, adapters.events, adapters.configCenter, logger)
	return coreAPIs, adapters
}

func activeOrg(id string, name string) *model.Organization {
	return &model.Organization{ID: id, Name: name, State: model.OrganizationStateActive, DateCreated: time.Now().UTC()}
}

func TestSerCreateOrganization(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	persisted := activeOrg("org-1", "Acme")
	adapters.storage.On("InsertOrganization", mock.MatchedBy(func(org model.Organization) bool {
		return org.State == model.OrganizationStateActive &&
			org.CommonSettings[model.PasswordResetEmailTemplateKey] == model.PasswordResetEmailTemplateDefault
	})).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(nil)
	adapters.membership.On("CreateDevGroup", "org-1").Return(nil)
	adapters.membership.On("AddMember", "org-1", "user-1", model.MemberRoleAdmin).Return(true, nil)

	org, err := coreAPIs.Services.SerCreateOrganization(&model.Organization{Name: "Acme"}, "user-1", false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, org.ID, "org-1", "id is different")

	adapters.membership.AssertExpectations(t)
}

func TestSerCreateOrganizationSuperAdmin(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	persisted := activeOrg("org-1", "Acme")
	adapters.storage.On("InsertOrganization", mock.AnythingOfType("model.Organization")).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(nil)
	adapters.membership.On("CreateDevGroup", "org-1").Return(nil)
	adapters.membership.On("AddMember", "org-1", "user-1", model.MemberRoleSuperAdmin).Return(true, nil)

	_, err := coreAPIs.Services.SerCreateOrganization(&model.Organization{Name: "Acme"}, "user-1", true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	adapters.membership.AssertExpectations(t)
}

func TestSerCreateOrganizationRejectsPresetID(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	_, err := coreAPIs.Services.SerCreateOrganization(&model.Organization{ID: "preset", Name: "Acme"}, "user-1", false)
	if err == nil {
		t.Error("we are expecting error")
	}

	_, err = coreAPIs.Services.SerCreateOrganization(nil, "user-1", false)
	if err == nil {
		t.Error("we are expecting error")
	}

	adapters.storage.AssertNotCalled(t, "InsertOrganization", mock.Anything)
}

func TestSerCreateOrganizationGroupSetupFailureSurfaces(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	persisted := activeOrg("org-1", "Acme")
	adapters.storage.On("InsertOrganization", mock.AnythingOfType("model.Organization")).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(errFake)

	_, err := coreAPIs.Services.SerCreateOrganization(&model.Organization{Name: "Acme"}, "user-1", false)
	if err == nil {
		t.Error("we are expecting error")
	}

	//the dev group and the member are never attempted after the first failure
	adapters.membership.AssertNotCalled(t, "CreateDevGroup", mock.Anything)
	adapters.membership.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestSerCreateDefaultOrganizationSaaS(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	persisted := activeOrg("org-1", "John's workspace")
	adapters.storage.On("InsertOrganization", mock.MatchedBy(func(org model.Organization) bool {
		return org.Name == "John's workspace" && org.IsAutoGenerated
	})).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(nil)
	adapters.membership.On("CreateDevGroup", "org-1").Return(nil)
	adapters.membership.On("AddMember", "org-1", "user-1", model.MemberRoleAdmin).Return(true, nil)

	user := model.User{ID: "user-1", Name: "John"}
	org, err := coreAPIs.Services.SerCreateDefaultOrganization(context.Background(), user, false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, org.Name, "John's workspace", "name is different")
}

func TestSerCreateDefaultOrganizationLocalizedName(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	persisted := activeOrg("org-1", "王五的工作区")
	adapters.storage.On("InsertOrganization", mock.MatchedBy(func(org model.Organization) bool {
		return org.Name == "王五的工作区"
	})).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(nil)
	adapters.membership.On("CreateDevGroup", "org-1").Return(nil)
	adapters.membership.On("AddMember", "org-1", "user-1", model.MemberRoleAdmin).Return(true, nil)

	ctx := utils.WithLocale(context.Background(), "zh")
	user := model.User{ID: "user-1", Name: "王五"}
	_, err := coreAPIs.Services.SerCreateDefaultOrganization(ctx, user, false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	adapters.storage.AssertExpectations(t)
}

func TestSerCreateDefaultOrganizationEnterpriseJoinsExisting(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeEnterprise, "ent-1")

	existing := activeOrg("ent-1", "Enterprise")
	adapters.storage.On("FindOrganization", "ent-1", "").Return(existing, nil)
	adapters.membership.On("AddMember", "ent-1", "user-1", model.MemberRoleMember).Return(true, nil)

	user := model.User{ID: "user-1", Name: "John"}
	org, err := coreAPIs.Services.SerCreateDefaultOrganization(context.Background(), user, false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if org != nil {
		t.Error("no new organization should be created when joining the enterprise one")
	}

	adapters.storage.AssertNotCalled(t, "InsertOrganization", mock.Anything)
}

func TestSerCreateDefaultOrganizationEnterpriseNoExisting(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeEnterprise, "")

	adapters.storage.On("FindFirstOrganizationByState", model.OrganizationStateActive).Return(nil, nil)

	persisted := activeOrg("org-1", "John's workspace")
	adapters.storage.On("InsertOrganization", mock.MatchedBy(func(org model.Organization) bool {
		//the new enterprise organization carries a seeded auth config
		return org.OrganizationDomain != nil && len(org.OrganizationDomain.Configs) == 1
	})).Return(persisted, nil)
	adapters.membership.On("CreateAllUsersGroup", "org-1").Return(nil)
	adapters.membership.On("CreateDevGroup", "org-1").Return(nil)
	adapters.membership.On("AddMember", "org-1", "user-1", model.MemberRoleAdmin).Return(true, nil)

	user := model.User{ID: "user-1", Name: "John"}
	org, err := coreAPIs.Services.SerCreateDefaultOrganization(context.Background(), user, false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if org == nil {
		t.Error("org is nil")
	}
}

func TestSerGetOrganizationInEnterpriseModeDeletedConfigured(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeEnterprise, "ent-1")

	deleted := &model.Organization{ID: "ent-1", Name: "Enterprise", State: model.OrganizationStateDeleted}
	adapters.storage.On("FindOrganization", "ent-1", "").Return(deleted, nil)

	_, err := coreAPIs.Services.SerGetOrganizationInEnterpriseMode()
	if err == nil {
		t.Error("we are expecting error for a deleted configured organization")
	}

	//no fallback when the configured organization exists but is deleted
	adapters.storage.AssertNotCalled(t, "FindFirstOrganizationByState", mock.Anything)
}

func TestSerGetOrganizationInEnterpriseModeFallback(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeEnterprise, "ent-1")

	fallback := activeOrg("org-2", "Oldest")
	adapters.storage.On("FindOrganization", "ent-1", "").Return(nil, nil)
	adapters.storage.On("FindFirstOrganizationByState", model.OrganizationStateActive).Return(fallback, nil)

	org, err := coreAPIs.Services.SerGetOrganizationInEnterpriseMode()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, org.ID, "org-2", "id is different")
}

func TestSerGetOrganizationInEnterpriseModeSaaS(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "ent-1")

	org, err := coreAPIs.Services.SerGetOrganizationInEnterpriseMode()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if org != nil {
		t.Error("saas mode has no enterprise organization")
	}

	adapters.storage.AssertNotCalled(t, "FindOrganization", mock.Anything, mock.Anything)
}

func TestSerGetOrganization(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(activeOrg("org-1", "Acme"), nil)

	org, err := coreAPIs.Services.SerGetOrganization("org-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, org.Name, "Acme", "name is different")
}

func TestSerGetOrganizationMissing(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(nil, nil)

	_, err := coreAPIs.Services.SerGetOrganization("org-1")
	if err == nil {
		t.Error("we are expecting error")
	}
}

func TestSerGetOrganizations(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	found := []model.Organization{*activeOrg("org-1", "One")}
	adapters.storage.On("FindOrganizations", []string{"org-1", "org-2"}, model.OrganizationStateActive).Return(found, nil)

	organizations, err := coreAPIs.Services.SerGetOrganizations([]string{"org-1", "org-2"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	//missing and inactive ids are silently dropped
	assert.Equal(t, len(organizations), 1, "count is different")
}

func TestSerGetOrgCommonSettings(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	org := activeOrg("org-1", "Acme")
	org.CommonSettings = model.OrganizationCommonSettings{"theme": "dark"}
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(org, nil)

	settings, err := coreAPIs.Services.SerGetOrgCommonSettings("org-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, settings["theme"], "dark", "setting is different")
}

func TestSerGetOrganizationBySource(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("FindOrganizationBySource", "dingtalk", "company-1", model.OrganizationStateActive).Return(nil, nil)

	org, err := coreAPIs.Services.SerGetOrganizationBySource("dingtalk", "company-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if org != nil {
		t.Error("org should be nil on miss")
	}
}

func TestSerGetOrganizationByDomain(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("FindOrganizationByDomain", "acme.example.com", model.OrganizationStateActive).Return(activeOrg("org-1", "Acme"), nil)

	ctx := utils.WithRefererDomain(context.Background(), "acme.example.com")
	org, err := coreAPIs.Services.SerGetOrganizationByDomain(ctx)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, org.ID, "org-1", "id is different")
}

func TestSerGetOrganizationByDomainNoReferer(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	_, err := coreAPIs.Services.SerGetOrganizationByDomain(context.Background())
	if err == nil {
		t.Error("we are expecting error")
	}

	adapters.storage.AssertNotCalled(t, "FindOrganizationByDomain", mock.Anything, mock.Anything)
}

func TestSerUploadLogoReplacesPrevious(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.configCenter.On("LogoMaxSizeKB").Return(300)
	adapters.assets.On("UploadAsset", "logo.png", "image/png", []byte("img"), 300).
		Return(&model.Asset{ID: "asset-new"}, nil)

	prev := "asset-old"
	org := activeOrg("org-1", "Acme")
	org.LogoAssetID = &prev
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(org, nil)

	var calls []string
	adapters.storage.On("UpdateOrganizationLogoAsset", "org-1", mock.MatchedBy(func(assetID *string) bool {
		return assetID != nil && *assetID == "asset-new"
	})).Run(func(args mock.Arguments) { calls = append(calls, "update") }).Return(true, nil)
	adapters.assets.On("DeleteAsset", "asset-old").
		Run(func(args mock.Arguments) { calls = append(calls, "delete") }).Return(nil)

	updated, err := coreAPIs.Services.SerUploadLogo("org-1", "logo.png", "image/png", []byte("img"))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !updated {
		t.Error("updated should be true")
	}

	//the new reference is written before the old asset is removed
	assert.DeepEqual(t, calls, []string{"update", "delete"})
}

func TestSerUploadLogoFirstLogo(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.configCenter.On("LogoMaxSizeKB").Return(300)
	adapters.assets.On("UploadAsset", "logo.png", "image/png", []byte("img"), 300).
		Return(&model.Asset{ID: "asset-new"}, nil)
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(activeOrg("org-1", "Acme"), nil)
	adapters.storage.On("UpdateOrganizationLogoAsset", "org-1", mock.AnythingOfType("*string")).Return(true, nil)

	updated, err := coreAPIs.Services.SerUploadLogo("org-1", "logo.png", "image/png", []byte("img"))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !updated {
		t.Error("updated should be true")
	}

	adapters.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything)
}

func TestSerUploadLogoInactiveOrganization(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.configCenter.On("LogoMaxSizeKB").Return(300)
	adapters.assets.On("UploadAsset", "logo.png", "image/png", []byte("img"), 300).
		Return(&model.Asset{ID: "asset-new"}, nil)
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(nil, nil)

	_, err := coreAPIs.Services.SerUploadLogo("org-1", "logo.png", "image/png", []byte("img"))
	if err == nil {
		t.Error("we are expecting error")
	}

	adapters.storage.AssertNotCalled(t, "UpdateOrganizationLogoAsset", mock.Anything, mock.Anything)
}

func TestSerDeleteLogo(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	prev := "asset-old"
	org := activeOrg("org-1", "Acme")
	org.LogoAssetID = &prev
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(org, nil)
	adapters.assets.On("FindAsset", "asset-old").Return(&model.Asset{ID: "asset-old"}, nil)

	var calls []string
	adapters.assets.On("DeleteAsset", "asset-old").
		Run(func(args mock.Arguments) { calls = append(calls, "delete") }).Return(nil)
	adapters.storage.On("UpdateOrganizationLogoAsset", "org-1", (*string)(nil)).
		Run(func(args mock.Arguments) { calls = append(calls, "clear") }).Return(true, nil)

	updated, err := coreAPIs.Services.SerDeleteLogo("org-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !updated {
		t.Error("updated should be true")
	}

	//removal clears the asset first, then the reference
	assert.DeepEqual(t, calls, []string{"delete", "clear"})
}

func TestSerDeleteLogoNoLogo(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(activeOrg("org-1", "Acme"), nil)

	_, err := coreAPIs.Services.SerDeleteLogo("org-1")
	if err == nil {
		t.Error("we are expecting error")
	}

	adapters.assets.AssertNotCalled(t, "FindAsset", mock.Anything)
	adapters.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything)
}

func TestSerDeleteLogoDanglingAsset(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	//the organization references an asset which is gone from the asset store
	prev := "asset-gone"
	org := activeOrg("org-1", "Acme")
	org.LogoAssetID = &prev
	adapters.storage.On("FindOrganization", "org-1", model.OrganizationStateActive).Return(org, nil)
	adapters.assets.On("FindAsset", "asset-gone").Return(nil, nil)

	_, err := coreAPIs.Services.SerDeleteLogo("org-1")
	if err == nil {
		t.Error("we are expecting error")
	}

	adapters.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything)
	adapters.storage.AssertNotCalled(t, "UpdateOrganizationLogoAsset", mock.Anything, mock.Anything)
}

func TestSerUpdateOrganization(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	newName := "Acme 2"
	update := model.OrganizationUpdate{Name: &newName}
	adapters.storage.On("UpdateOrganization", "org-1", update).Return(true, nil)

	updated, err := coreAPIs.Services.SerUpdateOrganization("org-1", update)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !updated {
		t.Error("updated should be true")
	}
}

func TestSerUpdateCommonSettings(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	var updateTime int64
	adapters.storage.On("UpdateOrganizationCommonSettings", "org-1", "theme", "dark", mock.AnythingOfType("int64")).
		Run(func(args mock.Arguments) { updateTime = args.Get(3).(int64) }).Return(true, nil)

	before := time.Now().UnixMilli()
	updated, err := coreAPIs.Services.SerUpdateCommonSettings("org-1", "theme", "dark")
	after := time.Now().UnixMilli()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !updated {
		t.Error("updated should be true")
	}
	if updateTime < before || updateTime > after {
		t.Errorf("update time %d is not the call time", updateTime)
	}
}

func TestSerDeleteOrganization(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("UpdateOrganizationState", "org-1", model.OrganizationStateDeleted).Return(true, nil)
	adapters.events.On("PublishOrganizationDeleted", mock.MatchedBy(func(event model.OrgDeletedEvent) bool {
		return event.OrgID == "org-1"
	})).Return()

	deleted, err := coreAPIs.Services.SerDeleteOrganization("org-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !deleted {
		t.Error("deleted should be true")
	}

	adapters.events.AssertExpectations(t)
}

func TestSerDeleteOrganizationAlreadyDeleted(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.storage.On("UpdateOrganizationState", "org-1", model.OrganizationStateDeleted).Return(false, nil)

	deleted, err := coreAPIs.Services.SerDeleteOrganization("org-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if deleted {
		t.Error("deleted should be false")
	}

	//no event when the state did not flip
	adapters.events.AssertNotCalled(t, "PublishOrganizationDeleted", mock.Anything)
}

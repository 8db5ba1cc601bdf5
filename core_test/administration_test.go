package core_test

import (
	"testing"
	"time"

	"organizations-building-block/core/model"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

// sweptAsset gives an asset old enough to be eligible for sweeping
func sweptAsset(id string) model.Asset {
	return model.Asset{ID: id, DateCreated: time.Now().Add(-1 * time.Hour)}
}

func TestAdmGetOrganizations(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	all := []model.Organization{*activeOrg("org-1", "One"),
		{ID: "org-2", Name: "Two", State: model.OrganizationStateDeleted}}
	adapters.storage.On("LoadOrganizations").Return(all, nil)

	organizations, err := coreAPIs.Administration.AdmGetOrganizations()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	//the admin listing includes deleted organizations
	assert.Equal(t, len(organizations), 2, "count is different")
}

func TestAdmSweepLogoAssets(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.assets.On("LoadAssets").Return([]model.Asset{sweptAsset("a"), sweptAsset("b"), sweptAsset("c")}, nil)
	adapters.storage.On("FindLogoAssetIDs").Return([]string{"b"}, nil)
	adapters.assets.On("DeleteAsset", "a").Return(nil)
	adapters.assets.On("DeleteAsset", "c").Return(nil)

	deleted, err := coreAPIs.Administration.AdmSweepLogoAssets()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, deleted, 2, "deleted count is different")

	adapters.assets.AssertNotCalled(t, "DeleteAsset", "b")
}

func TestAdmSweepLogoAssetsSkipsRecentUploads(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	//"fresh" is a just-uploaded asset whose organization reference may not be written yet
	fresh := model.Asset{ID: "fresh", DateCreated: time.Now()}
	adapters.assets.On("LoadAssets").Return([]model.Asset{sweptAsset("stale"), fresh}, nil)
	adapters.storage.On("FindLogoAssetIDs").Return([]string{}, nil)
	adapters.assets.On("DeleteAsset", "stale").Return(nil)

	deleted, err := coreAPIs.Administration.AdmSweepLogoAssets()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, deleted, 1, "deleted count is different")

	adapters.assets.AssertNotCalled(t, "DeleteAsset", "fresh")
}

func TestAdmSweepLogoAssetsDeleteFailureTolerated(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.assets.On("LoadAssets").Return([]model.Asset{sweptAsset("a"), sweptAsset("c")}, nil)
	adapters.storage.On("FindLogoAssetIDs").Return([]string{}, nil)
	adapters.assets.On("DeleteAsset", "a").Return(errFake)
	adapters.assets.On("DeleteAsset", "c").Return(nil)

	deleted, err := coreAPIs.Administration.AdmSweepLogoAssets()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	//the failed orphan stays for the next sweep
	assert.Equal(t, deleted, 1, "deleted count is different")
}

func TestAdmSweepLogoAssetsNothingToDo(t *testing.T) {
	coreAPIs, adapters := buildCoreAPIs(model.WorkspaceModeSaaS, "")

	adapters.assets.On("LoadAssets").Return([]model.Asset{sweptAsset("a")}, nil)
	adapters.storage.On("FindLogoAssetIDs").Return([]string{"a"}, nil)

	deleted, err := coreAPIs.Administration.AdmSweepLogoAssets()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	assert.Equal(t, deleted, 0, "deleted count is different")

	adapters.assets.AssertNotCalled(t, "DeleteAsset", mock.Anything)
}

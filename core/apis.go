package core

import (
	"context"

	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

//Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

//AddListener adds application listener
func (c *APIs) AddListener(listener ApplicationListener) {
	c.app.addListener(listener)
}

//GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

//NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, workspaceMode string, enterpriseOrgID string,
	storage Storage, assets AssetGateway, membership MembershipGateway, events EventsPublisher,
	configCenter ConfigCenter, logger *logs.Logger) *APIs {
	//add application instance
	listeners := []ApplicationListener{}
	application := application{env: env, version: version, build: build,
		workspaceMode: workspaceMode, enterpriseOrgID: enterpriseOrgID,
		storage: storage, assets: assets, membership: membership, events: events,
		configCenter: configCenter, logger: logger, listeners: listeners}

	//add coreAPIs instance
	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}

	return &coreAPIs
}

///

//servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerCreateDefaultOrganization(ctx context.Context, user model.User, isSuperAdmin bool) (*model.Organization, error) {
	return s.app.serCreateDefaultOrganization(ctx, user, isSuperAdmin)
}

func (s *servicesImpl) SerCreateOrganization(organization *model.Organization, creatorID string, isSuperAdmin bool) (*model.Organization, error) {
	return s.app.serCreateOrganization(organization, creatorID, isSuperAdmin)
}

func (s *servicesImpl) SerGetOrganization(id string) (*model.Organization, error) {
	return s.app.serGetOrganization(id)
}

func (s *servicesImpl) SerGetOrganizations(ids []string) ([]model.Organization, error) {
	return s.app.serGetOrganizations(ids)
}

func (s *servicesImpl) SerGetOrgCommonSettings(orgID string) (model.OrganizationCommonSettings, error) {
	return s.app.serGetOrgCommonSettings(orgID)
}

func (s *servicesImpl) SerGetOrganizationBySource(source string, companyID string) (*model.Organization, error) {
	return s.app.serGetOrganizationBySource(source, companyID)
}

func (s *servicesImpl) SerGetOrganizationByDomain(ctx context.Context) (*model.Organization, error) {
	return s.app.serGetOrganizationByDomain(ctx)
}

func (s *servicesImpl) SerGetOrganizationInEnterpriseMode() (*model.Organization, error) {
	return s.app.serGetOrganizationInEnterpriseMode()
}

func (s *servicesImpl) SerUploadLogo(orgID string, fileName string, contentType string, data []byte) (bool, error) {
	return s.app.serUploadLogo(orgID, fileName, contentType, data)
}

func (s *servicesImpl) SerDeleteLogo(orgID string) (bool, error) {
	return s.app.serDeleteLogo(orgID)
}

func (s *servicesImpl) SerUpdateOrganization(orgID string, update model.OrganizationUpdate) (bool, error) {
	return s.app.serUpdateOrganization(orgID, update)
}

func (s *servicesImpl) SerUpdateCommonSettings(orgID string, key string, value interface{}) (bool, error) {
	return s.app.serUpdateCommonSettings(orgID, key, value)
}

func (s *servicesImpl) SerDeleteOrganization(orgID string) (bool, error) {
	return s.app.serDeleteOrganization(orgID)
}

///

//administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetOrganizations() ([]model.Organization, error) {
	return s.app.admGetOrganizations()
}

func (s *administrationImpl) AdmSweepLogoAssets() (int, error) {
	return s.app.admSweepLogoAssets()
}

///

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

	"organizations-building-block/core/model"
)

// Services exposes APIs for the driver adapters
type Services interface {
	SerCreateDefaultOrganization(ctx context.Context, user model.User, isSuperAdmin bool) (*model.Organization, error)
	SerCreateOrganization(organization *model.Organization, creatorID string, isSuperAdmin bool) (*model.Organization, error)

	SerGetOrganization(id string) (*model.Organization, error)
	SerGetOrganizations(ids []string) ([]model.Organization, error)
	SerGetOrgCommonSettings(orgID string) (model.OrganizationCommonSettings, error)
	SerGetOrganizationBySource(source string, companyID string) (*model.Organization, error)
	SerGetOrganizationByDomain(ctx context.Context) (*model.Organization, error)
	SerGetOrganizationInEnterpriseMode() (*model.Organization, error)

	SerUploadLogo(orgID string, fileName string, contentType string, data []byte) (bool, error)
	SerDeleteLogo(orgID string) (bool, error)

	SerUpdateOrganization(orgID string, update model.OrganizationUpdate) (bool, error)
	SerUpdateCommonSettings(orgID string, key string, value interface{}) (bool, error)

	SerDeleteOrganization(orgID string) (bool, error)
}

// Administration exposes administration APIs for the driver adapters
type Administration interface {
	AdmGetOrganizations() ([]model.Organization, error)
	AdmSweepLogoAssets() (int, error)
}

// Storage is used by core to store the organization documents
type Storage interface {
	RegisterStorageListener(listener StorageListener)

	InsertOrganization(organization model.Organization) (*model.Organization, error)
	//FindOrganization finds an organization by id. An empty state matches any state.
	FindOrganization(id string, state string) (*model.Organization, error)
	FindOrganizations(ids []string, state string) ([]model.Organization, error)
	FindFirstOrganizationByState(state string) (*model.Organization, error)
	FindOrganizationBySource(source string, companyID string, state string) (*model.Organization, error)
	FindOrganizationByDomain(domain string, state string) (*model.Organization, error)
	LoadOrganizations() ([]model.Organization, error)
	FindLogoAssetIDs() ([]string, error)

	UpdateOrganization(id string, update model.OrganizationUpdate) (bool, error)
	UpdateOrganizationLogoAsset(id string, assetID *string) (bool, error)
	UpdateOrganizationState(id string, state string) (bool, error)
	UpdateOrganizationCommonSettings(id string, key string, value interface{}, updateTime int64) (bool, error)
}

// AssetGateway is used by core to store and remove binary assets
type AssetGateway interface {
	UploadAsset(fileName string, contentType string, data []byte, maxSizeKB int) (*model.Asset, error)
	FindAsset(id string) (*model.Asset, error)
	DeleteAsset(id string) error
	LoadAssets() ([]model.Asset, error)
}

// MembershipGateway is used by core to assign members and bootstrap the group structure
type MembershipGateway interface {
	AddMember(orgID string, userID string, role string) (bool, error)
	CreateAllUsersGroup(orgID string) error
	CreateDevGroup(orgID string) error
}

// EventsPublisher is used by core to hand off organization lifecycle events.
// The handoff is best effort - publish failures are never surfaced as operation failures.
type EventsPublisher interface {
	PublishOrganizationDeleted(event model.OrgDeletedEvent)
}

// Emailer is used to send operator notification emails
type Emailer interface {
	Send(toEmail string, subject string, body string, attachmentFilename *string) error
}

// ConfigCenter gives access to dynamically reloadable configuration values
type ConfigCenter interface {
	LogoMaxSizeKB() int
}

// StorageListener listens for storage data change events
type StorageListener interface {
	OnOrganizationsUpdated()
}

// ApplicationListener represents application listener
type ApplicationListener interface {
	OnOrganizationDeleted(event model.OrgDeletedEvent)
}

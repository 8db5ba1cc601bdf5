package storage

import (
	"time"
)

type organization struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	State string `bson:"state"`

	IsAutoGenerated bool `bson:"is_auto_generated"`

	OrganizationDomain *organizationDomain `bson:"organization_domain,omitempty"`

	LogoAssetID *string `bson:"logo_asset_id,omitempty"`

	CommonSettings map[string]interface{} `bson:"common_settings"`

	Source              *string `bson:"source,omitempty"`
	ThirdPartyCompanyID *string `bson:"third_party_company_id,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type organizationDomain struct {
	Domain  string       `bson:"domain"`
	Configs []authConfig `bson:"configs"`
}

type authConfig struct {
	ID       string `bson:"id"`
	Source   string `bson:"source"`
	AuthType string `bson:"auth_type"`
	Enable   bool   `bson:"enable"`
}

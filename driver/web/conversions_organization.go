package web

import (
	"time"

	"organizations-building-block/core/model"
)

//organizationResponse is the wire representation of an organization
type organizationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`

	IsAutoGenerated bool `json:"is_auto_generated"`

	Domain *string `json:"domain,omitempty"`

	LogoAssetID *string `json:"logo_asset_id,omitempty"`

	CommonSettings map[string]interface{} `json:"common_settings,omitempty"`

	Source              *string `json:"source,omitempty"`
	ThirdPartyCompanyID *string `json:"third_party_company_id,omitempty"`

	DateCreated string  `json:"date_created"`
	DateUpdated *string `json:"date_updated,omitempty"`
}

func organizationToDef(item model.Organization) organizationResponse {
	var domain *string
	if item.OrganizationDomain != nil {
		domain = &item.OrganizationDomain.Domain
	}

	var dateUpdated *string
	if item.DateUpdated != nil {
		formatted := item.DateUpdated.Format(time.RFC3339)
		dateUpdated = &formatted
	}

	return organizationResponse{ID: item.ID, Name: item.Name, State: item.State,
		IsAutoGenerated: item.IsAutoGenerated, Domain: domain, LogoAssetID: item.LogoAssetID,
		CommonSettings: item.CommonSettings, Source: item.Source, ThirdPartyCompanyID: item.ThirdPartyCompanyID,
		DateCreated: item.DateCreated.Format(time.RFC3339), DateUpdated: dateUpdated}
}

func organizationsToDef(items []model.Organization) []organizationResponse {
	result := make([]organizationResponse, len(items))
	for i, item := range items {
		result[i] = organizationToDef(item)
	}
	return result
}

//createOrganizationRequest is the create organization request body
type createOrganizationRequest struct {
	Name string `json:"name" validate:"required"`

	CreatorID    string `json:"creator_id" validate:"required"`
	IsSuperAdmin bool   `json:"is_super_admin"`

	Domain *string `json:"domain"`

	Source              *string `json:"source"`
	ThirdPartyCompanyID *string `json:"third_party_company_id"`
}

//createDefaultOrganizationRequest is the create default organization request body
type createDefaultOrganizationRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`

	IsSuperAdmin bool `json:"is_super_admin"`
}

//updateOrganizationRequest is the partial update request body. Absent fields stay untouched.
type updateOrganizationRequest struct {
	Name *string `json:"name"`

	Domain *string `json:"domain"`

	Source              *string `json:"source"`
	ThirdPartyCompanyID *string `json:"third_party_company_id"`
}

//updateCommonSettingsRequest is the common settings update request body
type updateCommonSettingsRequest struct {
	Key   string      `json:"key" validate:"required"`
	Value interface{} `json:"value"`
}

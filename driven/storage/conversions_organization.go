package storage

import (
	"organizations-building-block/core/model"
)

//Organization
func organizationFromStorage(item *organization) model.Organization {
	if item == nil {
		return model.Organization{}
	}

	return model.Organization{ID: item.ID, Name: item.Name, State: item.State,
		IsAutoGenerated: item.IsAutoGenerated, OrganizationDomain: organizationDomainFromStorage(item.OrganizationDomain),
		LogoAssetID: item.LogoAssetID, CommonSettings: item.CommonSettings,
		Source: item.Source, ThirdPartyCompanyID: item.ThirdPartyCompanyID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsFromStorage(itemsList []organization) []model.Organization {
	if len(itemsList) == 0 {
		return make([]model.Organization, 0)
	}

	items := make([]model.Organization, len(itemsList))
	for i, org := range itemsList {
		items[i] = organizationFromStorage(&org)
	}
	return items
}

func organizationToStorage(item *model.Organization) *organization {
	if item == nil {
		return nil
	}

	return &organization{ID: item.ID, Name: item.Name, State: item.State,
		IsAutoGenerated: item.IsAutoGenerated, OrganizationDomain: organizationDomainToStorage(item.OrganizationDomain),
		LogoAssetID: item.LogoAssetID, CommonSettings: item.CommonSettings,
		Source: item.Source, ThirdPartyCompanyID: item.ThirdPartyCompanyID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//OrganizationDomain
func organizationDomainFromStorage(item *organizationDomain) *model.OrganizationDomain {
	if item == nil {
		return nil
	}

	configs := make([]model.AuthConfig, len(item.Configs))
	for i, config := range item.Configs {
		configs[i] = model.AuthConfig{ID: config.ID, Source: config.Source, AuthType: config.AuthType, Enable: config.Enable}
	}
	return &model.OrganizationDomain{Domain: item.Domain, Configs: configs}
}

func organizationDomainToStorage(item *model.OrganizationDomain) *organizationDomain {
	if item == nil {
		return nil
	}

	configs := make([]authConfig, len(item.Configs))
	for i, config := range item.Configs {
		configs[i] = authConfig{ID: config.ID, Source: config.Source, AuthType: config.AuthType, Enable: config.Enable}
	}
	return &organizationDomain{Domain: item.Domain, Configs: configs}
}

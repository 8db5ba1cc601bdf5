package model

import (
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization organization
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeOrganizationCommonSettings organization common settings
	TypeOrganizationCommonSettings logutils.MessageDataType = "organization common settings"
	//TypeOrganizationDomain organization domain
	TypeOrganizationDomain logutils.MessageDataType = "organization domain"
	//TypeOrgDeletedEvent organization deleted event
	TypeOrgDeletedEvent logutils.MessageDataType = "organization deleted event"
)

//Organization states
const (
	//OrganizationStateActive the organization is live
	OrganizationStateActive string = "active"
	//OrganizationStateDeleted the organization is soft deleted. Terminal - no reactivation.
	OrganizationStateDeleted string = "deleted"
)

//Member roles passed to the membership building block
const (
	//MemberRoleMember regular member
	MemberRoleMember string = "member"
	//MemberRoleAdmin organization admin
	MemberRoleAdmin string = "admin"
	//MemberRoleSuperAdmin super admin
	MemberRoleSuperAdmin string = "super_admin"
)

//Workspace deployment modes
const (
	//WorkspaceModeSaaS many independent organizations
	WorkspaceModeSaaS string = "saas"
	//WorkspaceModeEnterprise the deployment is constrained to a single organization
	WorkspaceModeEnterprise string = "enterprise"
)

//PasswordResetEmailTemplateKey is the common settings key every organization carries after creation
const PasswordResetEmailTemplateKey = "passwordResetEmailTemplate"

//PasswordResetEmailTemplateDefault is the initial value for PasswordResetEmailTemplateKey
const PasswordResetEmailTemplateDefault = "<p>Hi, %s<br/>" +
	"Here is the link to reset your password: %s<br/>" +
	"Please note that the link will expire after 12 hours.<br/><br/>" +
	"Regards,<br/>" +
	"The Openfoundry Team</p>"

//Organization represents an organization entity - a tenant/workspace boundary
type Organization struct {
	ID    string
	Name  string
	State string

	IsAutoGenerated bool

	OrganizationDomain *OrganizationDomain

	LogoAssetID *string

	CommonSettings OrganizationCommonSettings

	//external identity provider linkage
	Source              *string
	ThirdPartyCompanyID *string

	DateCreated time.Time
	DateUpdated *time.Time
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tState:%s]", o.ID, o.Name, o.State)
}

//OrganizationCommonSettings is a per-key-timestamped configuration map attached to an organization.
//Every mutation of a key also writes <key>_updateTime holding the epoch millisecond write time.
type OrganizationCommonSettings map[string]interface{}

//CommonSettingsUpdateTimeKey builds the companion update-time key for a settings key
func CommonSettingsUpdateTimeKey(key string) string {
	return key + "_updateTime"
}

//OrganizationDomain holds a domain string and the authentication configs bootstrapped for it
type OrganizationDomain struct {
	Domain  string
	Configs []AuthConfig
}

//AuthConfig is an authentication config record attached to an organization domain
type AuthConfig struct {
	ID       string
	Source   string
	AuthType string
	Enable   bool
}

//DefaultAuthConfig is seeded on organizations created under enterprise mode
var DefaultAuthConfig = AuthConfig{ID: "default", Source: "email", AuthType: "form", Enable: true}

//OrganizationUpdate carries the fields a generic partial organization update may set
type OrganizationUpdate struct {
	Name                *string
	Source              *string
	ThirdPartyCompanyID *string
	OrganizationDomain  *OrganizationDomain
}

//OrgDeletedEvent notifies other subsystems that an organization has been soft deleted
type OrgDeletedEvent struct {
	OrgID string
	Time  time.Time
}

//User carries the caller identity data the organization lifecycle needs
type User struct {
	ID   string
	Name string
}

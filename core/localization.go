package core

//userOrgSuffix gives the localized suffix appended to the user name when
//naming an auto generated organization
func userOrgSuffix(locale string) string {
	switch locale {
	case "zh", "zh-CN", "zh-TW":
		return "的工作区"
	default:
		return "'s workspace"
	}
}

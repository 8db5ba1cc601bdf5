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

package emailer

import (
	"fmt"

	"organizations-building-block/core"
	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//OrgDeletedNotifier emails the operator address when an organization gets deleted.
//Delivery is best effort - a failed send is logged and dropped.
type OrgDeletedNotifier struct {
	emailer       core.Emailer
	operatorEmail string
	logger        *logs.Logger
}

//OnOrganizationDeleted notifies the operator about the deleted organization
func (n *OrgDeletedNotifier) OnOrganizationDeleted(event model.OrgDeletedEvent) {
	if len(n.operatorEmail) == 0 {
		return
	}

	subject := fmt.Sprintf("Organization %s deleted", event.OrgID)
	body := fmt.Sprintf("<p>Organization <b>%s</b> was deleted at %s.</p>", event.OrgID, event.Time.Format("2006-01-02 15:04:05 UTC"))
	err := n.emailer.Send(n.operatorEmail, subject, body, nil)
	if err != nil {
		n.logger.Errorf("error sending org deleted notification for %s - %s", event.OrgID, err)
	}
}

//NewOrgDeletedNotifier creates a new organization deleted notifier instance
func NewOrgDeletedNotifier(emailer core.Emailer, operatorEmail string, logger *logs.Logger) *OrgDeletedNotifier {
	return &OrgDeletedNotifier{emailer: emailer, operatorEmail: operatorEmail, logger: logger}
}

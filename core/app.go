package core

import (
	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	workspaceMode   string
	enterpriseOrgID string

	storage      Storage
	assets       AssetGateway
	membership   MembershipGateway
	events       EventsPublisher
	configCenter ConfigCenter

	logger *logs.Logger

	listeners []ApplicationListener
}

//start starts the core part of the application
func (app *application) start() {
	storageListener := coreStorageListener{app: app}
	app.storage.RegisterStorageListener(&storageListener)
}

//addListener adds application listener
func (app *application) addListener(listener ApplicationListener) {
	app.listeners = append(app.listeners, listener)
}

func (app *application) notifyListeners(event model.OrgDeletedEvent) {
	go func() {
		for _, listener := range app.listeners {
			listener.OnOrganizationDeleted(event)
		}
	}()
}

//coreStorageListener listens for organization data changes
type coreStorageListener struct {
	app *application
}

//OnOrganizationsUpdated notifies that the organizations collection has been updated
func (l *coreStorageListener) OnOrganizationsUpdated() {
	l.app.logger.Info("organizations collection updated")
}

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

package web

import (
	"fmt"
	"net/http"

	"organizations-building-block/core"
	"organizations-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"

	httpSwagger "github.com/swaggo/http-swagger"
)

//Adapter entity
type Adapter struct {
	host string
	port string

	logger *logs.Logger

	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request) logs.HTTPResponse

// @title Organizations Building Block API
// @description Organizations Building Block API Documentation.
// @version 1.0.0
// @host localhost:80
// @BasePath /organizations-bb
// @schemes https http

//Start starts the web server
func (we Adapter) Start() {
	//add listener to the application
	we.coreAPIs.AddListener(&AppListener{&we})

	router := mux.NewRouter().StrictSlash(true)

	// handle apis
	subRouter := router.PathPrefix("/organizations-bb").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.servicesApisHandler.getVersion)).Methods("GET")

	///services ///
	subRouter.HandleFunc("/organizations", we.wrapFunc(we.servicesApisHandler.createOrganization)).Methods("POST")
	subRouter.HandleFunc("/organizations", we.wrapFunc(we.servicesApisHandler.getOrganizations)).Methods("GET")
	subRouter.HandleFunc("/organizations/default", we.wrapFunc(we.servicesApisHandler.createDefaultOrganization)).Methods("POST")
	subRouter.HandleFunc("/organizations/enterprise", we.wrapFunc(we.servicesApisHandler.getEnterpriseOrganization)).Methods("GET")
	subRouter.HandleFunc("/organizations/by-source", we.wrapFunc(we.servicesApisHandler.getOrganizationBySource)).Methods("GET")
	subRouter.HandleFunc("/organizations/by-domain", we.wrapFunc(we.servicesApisHandler.getOrganizationByDomain)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.getOrganization)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.updateOrganization)).Methods("PUT")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.deleteOrganization)).Methods("DELETE")
	subRouter.HandleFunc("/organizations/{id}/common-settings", we.wrapFunc(we.servicesApisHandler.getOrgCommonSettings)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}/common-settings", we.wrapFunc(we.servicesApisHandler.updateCommonSettings)).Methods("PUT")
	subRouter.HandleFunc("/organizations/{id}/logo", we.wrapFunc(we.servicesApisHandler.uploadLogo)).Methods("POST")
	subRouter.HandleFunc("/organizations/{id}/logo", we.wrapFunc(we.servicesApisHandler.deleteLogo)).Methods("DELETE")

	///admin ///
	adminSubrouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubrouter.HandleFunc("/organizations", we.wrapFunc(we.adminApisHandler.getOrganizations)).Methods("GET")
	adminSubrouter.HandleFunc("/assets/sweep", we.wrapFunc(we.adminApisHandler.sweepLogoAssets)).Methods("POST")

	we.logger.Fatalf("error serving: %v", http.ListenAndServe(":"+we.port, router))
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./driver/web/docs/gen/def.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/organizations-bb/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logObj := we.logger.NewRequestLog(req)

		logObj.RequestReceived()

		response := handler(logObj, req)

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

//NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(coreAPIs *core.APIs, host string, port string, logger *logs.Logger) Adapter {
	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	return Adapter{host: host, port: port, logger: logger,
		servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler, coreAPIs: coreAPIs}
}

//AppListener implements core.ApplicationListener interface
type AppListener struct {
	adapter *Adapter
}

//OnOrganizationDeleted notifies that an organization has been deleted
func (al *AppListener) OnOrganizationDeleted(event model.OrgDeletedEvent) {
	al.adapter.logger.Infof("organization %s deleted", event.OrgID)
}

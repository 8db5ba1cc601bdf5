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

package main

import (
	"os"
	"strconv"
	"time"

	"organizations-building-block/core"
	"organizations-building-block/driven/assets"
	"organizations-building-block/driven/configcenter"
	"organizations-building-block/driven/emailer"
	"organizations-building-block/driven/events"
	"organizations-building-block/driven/membershipbb"
	"organizations-building-block/driven/storage"
	"organizations-building-block/driver/web"

	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "organizations"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)

	level := getEnvVar(logger, "ORGANIZATIONS_BB_LOG_LEVEL", false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := getEnvVar(logger, "ORGANIZATIONS_BB_ENVIRONMENT", true) //local, dev, staging, prod
	port := getEnvVar(logger, "ORGANIZATIONS_BB_PORT", false)
	//Default port of 80
	if port == "" {
		port = "80"
	}
	host := getEnvVar(logger, "ORGANIZATIONS_BB_HOST", true)

	workspaceMode := getEnvVar(logger, "ORGANIZATIONS_BB_WORKSPACE_MODE", false)
	if workspaceMode == "" {
		workspaceMode = "saas"
	}
	enterpriseOrgID := getEnvVar(logger, "ORGANIZATIONS_BB_ENTERPRISE_ORG_ID", false)

	// mongoDB adapter
	mongoDBAuth := getEnvVar(logger, "ORGANIZATIONS_BB_MONGO_AUTH", true)
	mongoDBName := getEnvVar(logger, "ORGANIZATIONS_BB_MONGO_DATABASE", true)
	mongoTimeout := getEnvVar(logger, "ORGANIZATIONS_BB_MONGO_TIMEOUT", false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// assets adapter
	assetsTimeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		assetsTimeoutInt = 500
	}
	assetsAdapter := assets.NewAssetsAdapter(mongoDBAuth, mongoDBName, time.Millisecond*time.Duration(assetsTimeoutInt))
	err = assetsAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the assets adapter: %v", err)
	}

	// membership bb adapter
	membershipBBHost := getEnvVar(logger, "ORGANIZATIONS_BB_MEMBERSHIP_BB_HOST", true)
	membershipBBApiKey := getEnvVar(logger, "ORGANIZATIONS_BB_MEMBERSHIP_BB_API_KEY", false)
	membershipAdapter := membershipbb.NewMembershipBBAdapter(membershipBBHost, membershipBBApiKey)

	// events adapter
	eventsAdapter := events.NewEventsAdapter(logger)

	// emailer + org deleted notifier
	smtpHost := getEnvVar(logger, "ORGANIZATIONS_BB_SMTP_HOST", false)
	smtpPort := getEnvVar(logger, "ORGANIZATIONS_BB_SMTP_PORT", false)
	smtpUser := getEnvVar(logger, "ORGANIZATIONS_BB_SMTP_USER", false)
	smtpPassword := getEnvVar(logger, "ORGANIZATIONS_BB_SMTP_PASSWORD", false)
	smtpFrom := getEnvVar(logger, "ORGANIZATIONS_BB_SMTP_EMAIL_FROM", false)
	smtpPortNum, _ := strconv.Atoi(smtpPort)
	emailerAdapter := emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom)

	operatorEmail := getEnvVar(logger, "ORGANIZATIONS_BB_OPERATOR_EMAIL", false)
	eventsAdapter.RegisterListener(emailer.NewOrgDeletedNotifier(emailerAdapter, operatorEmail, logger))

	// config center adapter
	configPath := getEnvVar(logger, "ORGANIZATIONS_BB_CONFIG_PATH", false)
	configCenterAdapter := configcenter.NewConfigCenterAdapter(configPath, logger)
	err = configCenterAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the config center adapter: %v", err)
	}

	//core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, workspaceMode, enterpriseOrgID,
		storageAdapter, assetsAdapter, membershipAdapter, eventsAdapter, configCenterAdapter, logger)
	coreAPIs.Start()

	//web adapter
	webAdapter := web.NewWebAdapter(coreAPIs, host, port, logger)
	webAdapter.Start()
}

func getEnvVar(logger *logs.Logger, name string, required bool) string {
	value := os.Getenv(name)
	if len(value) == 0 && required {
		logger.Fatalf("%s env variable is not set", name)
	}
	return value
}

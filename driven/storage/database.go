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

package storage

import (
	"context"
	"time"

	"organizations-building-block/core"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	organizations *collectionWrapper

	listeners []core.StorageListener
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.organizations = organizations

	//watch for organizations changes
	go m.organizations.Watch(nil, m.logger)

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add state index
	err := organizations.AddIndex(bson.D{primitive.E{Key: "state", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add domain index - one organization per domain
	err = organizations.AddIndex(bson.D{primitive.E{Key: "organization_domain.domain", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add source + third party company id index
	err = organizations.AddIndex(bson.D{primitive.E{Key: "source", Value: 1},
		primitive.E{Key: "third_party_company_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) onDataChanged(changeDoc map[string]interface{}) {
	if changeDoc == nil {
		return
	}
	ns := changeDoc["ns"]
	if ns == nil {
		return
	}

	var coll interface{}
	switch nsVal := ns.(type) {
	case primitive.M:
		coll = nsVal["coll"]
	case map[string]interface{}:
		coll = nsVal["coll"]
	}

	if coll == "organizations" {
		for _, listener := range m.listeners {
			listener.OnOrganizationsUpdated()
		}
	}
}

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
	"strconv"
	"time"

	"organizations-building-block/core"
	"organizations-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//Adapter implements the Storage interface
type Adapter struct {
	db *database
}

//Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	return err
}

//RegisterStorageListener registers a data change listener with the storage adapter
func (sa *Adapter) RegisterStorageListener(storageListener core.StorageListener) {
	sa.db.listeners = append(sa.db.listeners, storageListener)
}

//InsertOrganization inserts an organization. The identifier and creation date are assigned here.
func (sa *Adapter) InsertOrganization(item model.Organization) (*model.Organization, error) {
	orgID, _ := uuid.NewUUID()
	item.ID = orgID.String()
	item.DateCreated = time.Now().UTC()

	stgOrg := organizationToStorage(&item)
	_, err := sa.db.organizations.InsertOne(stgOrg)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}

	return &item, nil
}

//FindOrganization finds an organization by id. An empty state matches any state.
func (sa *Adapter) FindOrganization(id string, state string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	if len(state) > 0 {
		filter = append(filter, primitive.E{Key: "state", Value: state})
	}

	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}

	org := organizationFromStorage(&result[0])
	return &org, nil
}

//FindOrganizations finds the organizations with the given ids filtered by state
func (sa *Adapter) FindOrganizations(ids []string, state string) ([]model.Organization, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: bson.M{"$in": ids}}}
	if len(state) > 0 {
		filter = append(filter, primitive.E{Key: "state", Value: state})
	}

	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	return organizationsFromStorage(result), nil
}

//FindFirstOrganizationByState finds the oldest organization in the given state
func (sa *Adapter) FindFirstOrganizationByState(state string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "state", Value: state}}
	findOptions := options.Find()
	findOptions.SetSort(bson.D{primitive.E{Key: "date_created", Value: 1}})
	findOptions.SetLimit(1)

	var result []organization
	err := sa.db.organizations.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"state": state}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}

	org := organizationFromStorage(&result[0])
	return &org, nil
}

//FindOrganizationBySource finds an organization by its identity provider linkage
func (sa *Adapter) FindOrganizationBySource(source string, companyID string, state string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "source", Value: source},
		primitive.E{Key: "third_party_company_id", Value: companyID}}
	if len(state) > 0 {
		filter = append(filter, primitive.E{Key: "state", Value: state})
	}

	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"source": source, "company_id": companyID}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}

	org := organizationFromStorage(&result[0])
	return &org, nil
}

//FindOrganizationByDomain finds an organization bound to the given domain
func (sa *Adapter) FindOrganizationByDomain(domain string, state string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "organization_domain.domain", Value: domain}}
	if len(state) > 0 {
		filter = append(filter, primitive.E{Key: "state", Value: state})
	}

	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"domain": domain}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}

	org := organizationFromStorage(&result[0])
	return &org, nil
}

//LoadOrganizations loads all organizations regardless of state
func (sa *Adapter) LoadOrganizations() ([]model.Organization, error) {
	filter := bson.D{}
	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	return organizationsFromStorage(result), nil
}

//FindLogoAssetIDs gives the asset ids currently referenced by any organization
func (sa *Adapter) FindLogoAssetIDs() ([]string, error) {
	filter := bson.D{primitive.E{Key: "logo_asset_id", Value: bson.M{"$ne": nil}}}
	values, err := sa.db.organizations.Distinct("logo_asset_id", filter)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	ids := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

//UpdateOrganization applies a partial update. Only the set fields of the update are written.
func (sa *Adapter) UpdateOrganization(id string, update model.OrganizationUpdate) (bool, error) {
	set := bson.D{primitive.E{Key: "date_updated", Value: time.Now().UTC()}}
	if update.Name != nil {
		set = append(set, primitive.E{Key: "name", Value: *update.Name})
	}
	if update.Source != nil {
		set = append(set, primitive.E{Key: "source", Value: *update.Source})
	}
	if update.ThirdPartyCompanyID != nil {
		set = append(set, primitive.E{Key: "third_party_company_id", Value: *update.ThirdPartyCompanyID})
	}
	if update.OrganizationDomain != nil {
		set = append(set, primitive.E{Key: "organization_domain", Value: organizationDomainToStorage(update.OrganizationDomain)})
	}

	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	updateOperation := bson.D{primitive.E{Key: "$set", Value: set}}

	result, err := sa.db.organizations.UpdateOne(filter, updateOperation, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	return result.ModifiedCount > 0, nil
}

//UpdateOrganizationLogoAsset sets or clears the logo asset reference
func (sa *Adapter) UpdateOrganizationLogoAsset(id string, assetID *string) (bool, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "logo_asset_id", Value: assetID},
			primitive.E{Key: "date_updated", Value: time.Now().UTC()},
		}},
	}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	return result.ModifiedCount > 0, nil
}

//UpdateOrganizationState flips the organization state. Filtering on the inverse state
//makes the flip idempotent - a second call matches nothing and reports false.
func (sa *Adapter) UpdateOrganizationState(id string, state string) (bool, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id},
		primitive.E{Key: "state", Value: bson.M{"$ne": state}}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "state", Value: state},
			primitive.E{Key: "date_updated", Value: time.Now().UTC()},
		}},
	}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	return result.ModifiedCount > 0, nil
}

//UpdateOrganizationCommonSettings writes a settings value together with its companion
//update time key in a single update, so readers never observe one without the other
func (sa *Adapter) UpdateOrganizationCommonSettings(id string, key string, value interface{}, updateTime int64) (bool, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "common_settings." + key, Value: value},
			primitive.E{Key: "common_settings." + model.CommonSettingsUpdateTimeKey(key), Value: updateTime},
			primitive.E{Key: "date_updated", Value: time.Now().UTC()},
		}},
	}

	result, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationCommonSettings, &logutils.FieldArgs{"id": id, "key": key}, err)
	}
	return result.MatchedCount > 0, nil
}

//NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}
	return &Adapter{db: db}
}

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

package assets

import (
	"context"
	"time"

	"organizations-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type asset struct {
	ID          string `bson:"_id"`
	FileName    string `bson:"file_name"`
	ContentType string `bson:"content_type"`
	Size        int    `bson:"size"`

	Data []byte `bson:"data"`

	DateCreated time.Time `bson:"date_created"`
}

//Adapter implements the AssetGateway interface backed by a Mongo collection
type Adapter struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	assets *mongo.Collection
}

//Start connects the adapter to the assets store
func (a *Adapter) Start() error {
	clientOptions := options.Client().ApplyURI(a.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "assets adapter", nil, err)
	}

	pingContext, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "assets adapter", nil, err)
	}

	a.assets = client.Database(a.mongoDBName).Collection("assets")
	return nil
}

//UploadAsset stores a binary asset. Data larger than maxSizeKB kilobytes is rejected.
func (a *Adapter) UploadAsset(fileName string, contentType string, data []byte, maxSizeKB int) (*model.Asset, error) {
	if len(data) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, "asset data", nil)
	}
	if len(data) > maxSizeKB*1024 {
		return nil, errors.ErrorData(logutils.StatusInvalid, "asset size", &logutils.FieldArgs{"size": len(data), "max_kb": maxSizeKB})
	}

	assetID, _ := uuid.NewUUID()
	item := asset{ID: assetID.String(), FileName: fileName, ContentType: contentType,
		Size: len(data), Data: data, DateCreated: time.Now().UTC()}

	ctx, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	defer cancel()
	_, err := a.assets.InsertOne(ctx, item)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeAsset, nil, err)
	}

	return &model.Asset{ID: item.ID, FileName: item.FileName, ContentType: item.ContentType,
		Size: item.Size, DateCreated: item.DateCreated}, nil
}

//FindAsset finds an asset by id, nil when there is no record
func (a *Adapter) FindAsset(id string) (*model.Asset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	defer cancel()

	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	var item asset
	err := a.assets.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAsset, &logutils.FieldArgs{"id": id}, err)
	}

	return &model.Asset{ID: item.ID, FileName: item.FileName, ContentType: item.ContentType,
		Size: item.Size, DateCreated: item.DateCreated}, nil
}

//DeleteAsset removes an asset
func (a *Adapter) DeleteAsset(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	defer cancel()

	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	_, err := a.assets.DeleteOne(ctx, filter)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeAsset, &logutils.FieldArgs{"id": id}, err)
	}
	return nil
}

//LoadAssets gives all stored assets without the binary data
func (a *Adapter) LoadAssets() ([]model.Asset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.mongoTimeout)
	defer cancel()

	findOptions := options.Find()
	findOptions.SetProjection(bson.D{primitive.E{Key: "_id", Value: 1},
		primitive.E{Key: "date_created", Value: 1}})

	cur, err := a.assets.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAsset, nil, err)
	}

	var items []asset
	err = cur.All(ctx, &items)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAsset, nil, err)
	}

	result := make([]model.Asset, len(items))
	for i, item := range items {
		result[i] = model.Asset{ID: item.ID, DateCreated: item.DateCreated}
	}
	return result, nil
}

//NewAssetsAdapter creates a new assets adapter instance
func NewAssetsAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout time.Duration) *Adapter {
	return &Adapter{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: mongoTimeout}
}

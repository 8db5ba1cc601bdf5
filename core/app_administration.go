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

package core

import (
	"sync"
	"time"

	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"golang.org/x/sync/errgroup"
)

//sweepGraceWindow protects assets whose upload may still be writing the organization reference
const sweepGraceWindow = 10 * time.Minute

func (app *application) admGetOrganizations() ([]model.Organization, error) {
	organizations, err := app.storage.LoadOrganizations()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizations, nil
}

//admSweepLogoAssets removes stored assets which no organization references anymore.
//Upload replaces the reference before removing the old asset, so a crash in between
//can leave such orphans behind.
func (app *application) admSweepLogoAssets() (int, error) {
	allAssets, err := app.assets.LoadAssets()
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeAsset, nil, err)
	}

	referencedIDs, err := app.storage.FindLogoAssetIDs()
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	referenced := make(map[string]bool, len(referencedIDs))
	for _, id := range referencedIDs {
		referenced[id] = true
	}

	cutoff := time.Now().Add(-sweepGraceWindow)

	var group errgroup.Group
	group.SetLimit(5)

	var lock sync.Mutex
	deleted := 0
	for _, item := range allAssets {
		if referenced[item.ID] {
			continue
		}
		//an in-flight upload has stored its asset before recording the reference,
		//so a recently created asset is not an orphan yet
		if item.DateCreated.After(cutoff) {
			continue
		}
		assetID := item.ID
		group.Go(func() error {
			err := app.assets.DeleteAsset(assetID)
			if err != nil {
				//a failed delete leaves the orphan for the next sweep
				app.logger.Errorf("error deleting orphan asset %s - %s", assetID, err)
				return nil
			}
			lock.Lock()
			deleted++
			lock.Unlock()
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return deleted, errors.WrapErrorAction(logutils.ActionDelete, model.TypeAsset, nil, err)
	}

	return deleted, nil
}

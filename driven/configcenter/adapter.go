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

package configcenter

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rokwire/logging-library-go/v2/logs"
	"gopkg.in/yaml.v2"
)

const defaultLogoMaxSizeKB = 300

type configValues struct {
	LogoMaxSizeKB int `yaml:"logo_max_size_kb"`
}

//Adapter implements the ConfigCenter interface. The config file is watched and
//new values are picked up without a restart.
type Adapter struct {
	configPath string
	logger     *logs.Logger

	lock   sync.RWMutex
	values configValues
}

//Start loads the config file and starts watching it for changes
func (a *Adapter) Start() error {
	a.reload()

	if len(a.configPath) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = watcher.Add(a.configPath)
	if err != nil {
		watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					a.reload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				a.logger.Errorf("config watcher error: %s", err)
			}
		}
	}()
	return nil
}

func (a *Adapter) reload() {
	values := configValues{LogoMaxSizeKB: defaultLogoMaxSizeKB}

	if len(a.configPath) > 0 {
		data, err := os.ReadFile(a.configPath)
		if err != nil {
			a.logger.Warnf("cannot read config file %s - %s", a.configPath, err)
		} else {
			err = yaml.Unmarshal(data, &values)
			if err != nil {
				a.logger.Errorf("cannot parse config file %s - %s", a.configPath, err)
				values = configValues{LogoMaxSizeKB: defaultLogoMaxSizeKB}
			}
		}
	}

	if values.LogoMaxSizeKB <= 0 {
		values.LogoMaxSizeKB = defaultLogoMaxSizeKB
	}

	a.lock.Lock()
	a.values = values
	a.lock.Unlock()
}

//LogoMaxSizeKB gives the current logo size limit in kilobytes
func (a *Adapter) LogoMaxSizeKB() int {
	a.lock.RLock()
	defer a.lock.RUnlock()
	return a.values.LogoMaxSizeKB
}

//NewConfigCenterAdapter creates a new config center adapter instance.
//An empty config path keeps the defaults.
func NewConfigCenterAdapter(configPath string, logger *logs.Logger) *Adapter {
	return &Adapter{configPath: configPath, logger: logger}
}

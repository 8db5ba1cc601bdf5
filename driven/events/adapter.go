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

package events

import (
	"sync"

	"organizations-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//Listener consumes organization lifecycle events
type Listener interface {
	OnOrganizationDeleted(event model.OrgDeletedEvent)
}

//Adapter implements the EventsPublisher interface. Events are handed off to the
//registered listeners asynchronously and listener failures stay local to the listener.
type Adapter struct {
	logger *logs.Logger

	listenersLock sync.RWMutex
	listeners     []Listener
}

//RegisterListener registers an events listener
func (a *Adapter) RegisterListener(listener Listener) {
	a.listenersLock.Lock()
	defer a.listenersLock.Unlock()

	a.listeners = append(a.listeners, listener)
}

//PublishOrganizationDeleted hands off an organization deleted event
func (a *Adapter) PublishOrganizationDeleted(event model.OrgDeletedEvent) {
	a.listenersLock.RLock()
	listeners := make([]Listener, len(a.listeners))
	copy(listeners, a.listeners)
	a.listenersLock.RUnlock()

	go func() {
		for _, listener := range listeners {
			func() {
				defer func() {
					if r := recover(); r != nil {
						a.logger.Errorf("events listener panic on org deleted event %s - %v", event.OrgID, r)
					}
				}()
				listener.OnOrganizationDeleted(event)
			}()
		}
	}()
}

//NewEventsAdapter creates a new events adapter instance
func NewEventsAdapter(logger *logs.Logger) *Adapter {
	return &Adapter{logger: logger}
}

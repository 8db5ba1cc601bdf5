package model

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeAsset asset
	TypeAsset logutils.MessageDataType = "asset"
)

//Asset represents a stored binary object. Organizations hold at most one logo asset
//reference at a time; the asset lifetime is managed by the asset gateway.
type Asset struct {
	ID          string
	FileName    string
	ContentType string
	Size        int

	DateCreated time.Time
}

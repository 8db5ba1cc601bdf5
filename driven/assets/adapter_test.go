package assets

import (
	"bytes"
	"testing"
	"time"
)

func TestUploadAssetEmptyData(t *testing.T) {
	adapter := NewAssetsAdapter("", "", time.Second)

	_, err := adapter.UploadAsset("logo.png", "image/png", nil, 300)
	if err == nil {
		t.Error("we are expecting error")
	}

	_, err = adapter.UploadAsset("logo.png", "image/png", []byte{}, 300)
	if err == nil {
		t.Error("we are expecting error")
	}
}

func TestUploadAssetOverLimit(t *testing.T) {
	adapter := NewAssetsAdapter("", "", time.Second)

	//one byte over a 2 KB limit
	data := bytes.Repeat([]byte{0x1}, 2*1024+1)
	_, err := adapter.UploadAsset("logo.png", "image/png", data, 2)
	if err == nil {
		t.Error("we are expecting error")
	}
}

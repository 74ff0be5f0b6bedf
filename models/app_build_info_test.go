package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}

func TestAppBuildInfo_VersionOr(t *testing.T) {
	assert.Equal(t, "1.4.0", NewAppBuildInfo("1.4.0", "", "").VersionOr("dev"))
	assert.Equal(t, "dev", NewAppBuildInfo("", "", "").VersionOr("dev"))
	assert.Equal(t, "dev", AppBuildInfo{}.VersionOr("dev"))
}

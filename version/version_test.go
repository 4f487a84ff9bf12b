package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	info := Info{CommitHash: "0123456789abcdef", BuildTime: "now", Version: "dev"}
	assert.Equal(t, "xcsettings dev (commit 0123456789abcdef, built now)", info.String())
	assert.Equal(t, "0123456", info.Short())

	info.Version = "v1.2.0"
	assert.Contains(t, info.String(), "xcsettings v1.2.0")
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGenerator(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"tagged release", Info{Version: "v1.2.0", CommitHash: "0123456789"}, "1.2.0"},
		{"untagged", Info{Version: "dev", CommitHash: "0123456789"}, "0123456"},
		{"garbage version", Info{Version: "nightly", CommitHash: "abc"}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Generator())
		})
	}
}

package apiclient

import (
	"appcenter-go/internal/cstmerr"
	SharedModels "appcenter-go/internal/shared"
	"appcenter-go/internal/tokenstore"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUpdate(t *testing.T) {
	cases := []struct {
		name       string
		latest     string
		current    string
		wantLatest bool
	}{
		{"newer release available", "1.2.0", "1.0.0", false},
		{"caller ahead of backend", "1.2.0", "2.0.0", true},
		{"equal versions", "1.0.0", "1.0.0", true},
		{"short current version", "1.0.1", "1.0", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb, srv := newFakeBackend(t)
			fb.on(http.MethodGet, latestReleasePath, http.StatusOK,
				`{"ok":true,"code":0,"msg":"","data":{"id":"r9","appId":"a1","version":"`+tc.latest+`","downloadUrl":"https://dl/app.apk"}}`)
			client := newTestClient(srv, tokenstore.NewMemoryStore())

			result, err := client.CheckUpdate(context.Background(), SharedModels.AppQueryParam{AppID: "a1"}, tc.current)
			require.NoError(t, err)

			assert.Equal(t, tc.wantLatest, result.Latest)
			if tc.wantLatest {
				assert.Nil(t, result.Release)
			} else {
				require.NotNil(t, result.Release)
				assert.Equal(t, tc.latest, result.Release.Version)
				assert.Equal(t, "https://dl/app.apk", result.Release.DownloadURL)
			}
			assert.Equal(t, "appId=a1", fb.last(t).Query)
		})
	}
}

func TestCheckUpdateMalformedVersion(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on(http.MethodGet, latestReleasePath, http.StatusOK, `{"ok":true,"data":{"version":"build-77"}}`)
	client := newTestClient(srv, tokenstore.NewMemoryStore())

	result, err := client.CheckUpdate(context.Background(), SharedModels.AppQueryParam{AppID: "a1"}, "1.0.0")
	assert.Nil(t, result)

	var parseErr *cstmerr.VersionParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "build-77", parseErr.Version)
}

func TestCheckUpdatePropagatesFailure(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on(http.MethodGet, latestReleasePath, http.StatusOK, `{"ok":false,"code":2001,"msg":"no releases"}`)
	client := newTestClient(srv, tokenstore.NewMemoryStore())

	_, err := client.CheckUpdate(context.Background(), SharedModels.AppQueryParam{AppID: "a1"}, "1.0.0")

	var failure *cstmerr.APILogicalFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "no releases", failure.Message)
}

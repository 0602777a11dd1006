package vault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "https with www and path",
			url:  "https://www.example.com/login",
			want: "example.com",
		},
		{
			name: "http without www",
			url:  "http://example.com",
			want: "example.com",
		},
		{
			name: "bare host",
			url:  "example.com",
			want: "example.com",
		},
		{
			name: "www without scheme",
			url:  "www.example.com/a/b",
			want: "example.com",
		},
		{
			name: "host with port",
			url:  "https://example.com:8443/admin",
			want: "example.com:8443",
		},
		{
			name: "empty url",
			url:  "",
			want: "N/A",
		},
		{
			name: "scheme only",
			url:  "https://",
			want: "N/A",
		},
		{
			name: "leading slash after stripping",
			url:  "https://www./account",
			want: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.url))
		})
	}
}

func TestUpdateRequest_PasswordOmitted(t *testing.T) {
	// A nil password must be absent from the payload, not sent as an
	// empty string; the server treats a present key as an overwrite.
	req := UpdateRequest{URL: "https://example.com", Username: "alice"}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotContains(t, payload, "password")

	secret := "s3cret"
	req.Password = &secret
	raw, err = json.Marshal(req)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "s3cret", payload["password"])
}

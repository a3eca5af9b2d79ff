package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        string
		wantType    string
		wantPayload string
		wantErr     bool
	}{
		{
			name:        "png data url",
			data:        "data:image/png;base64,aGVsbG8=",
			wantType:    "image/png",
			wantPayload: "hello",
		},
		{
			name:        "jpeg data url",
			data:        "data:image/jpeg;base64,aGVsbG8=",
			wantType:    "image/jpeg",
			wantPayload: "hello",
		},
		{
			name:        "bare base64 defaults to png",
			data:        "aGVsbG8=",
			wantType:    "image/png",
			wantPayload: "hello",
		},
		{
			name:    "data url without comma",
			data:    "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "data url without base64 marker",
			data:    "data:image/png,aGVsbG8=",
			wantErr: true,
		},
		{
			name:    "invalid base64 payload",
			data:    "data:image/png;base64,!!!not-base64!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contentType, raw, err := decodeDataURL(tt.data)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImageData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, tt.wantPayload, string(raw))
		})
	}
}

func TestStorageKey(t *testing.T) {
	t.Parallel()

	key := storageKey()
	assert.True(t, strings.HasPrefix(key, "images/"))

	// Keys must be unique across calls.
	assert.NotEqual(t, key, storageKey())
}

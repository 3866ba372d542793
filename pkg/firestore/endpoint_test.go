package firestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acdih/synaptic/pkg/firestore"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "default", url: "https://firestore.googleapis.com", want: ""},
		{name: "default trailing slash", url: "https://firestore.googleapis.com/", want: ""},
		{name: "empty", url: "", want: ""},
		{name: "regional", url: "https://nam5-firestore.googleapis.com", want: "nam5-firestore.googleapis.com:443"},
		{name: "explicit port", url: "http://localhost:8080", want: "localhost:8080"},
		{name: "bare host", url: "firestore.example.test", want: "firestore.example.test:443"},
		{name: "bare host and port", url: "firestore.example.test:9443", want: "firestore.example.test:9443"},
		{name: "unsupported scheme", url: "ftp://firestore.example.test", wantErr: true},
		{name: "missing host", url: "https://", wantErr: true},
		{name: "path", url: "https://firestore.example.test/v1/projects", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := firestore.Endpoint(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, firestore.ErrInvalidDatabaseURL)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/pass-vault/internal/app"
	"github.com/MKhiriev/pass-vault/internal/clipboard"
	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/generator"
	"github.com/MKhiriev/pass-vault/internal/service"
	"github.com/MKhiriev/pass-vault/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "decryption", err: crypto.ErrDecryption, want: app.MsgDecryptionFailed},
		{name: "not found", err: fmt.Errorf("get vault item: %w", store.ErrVaultItemNotFound), want: app.MsgItemNotFound},
		{name: "no owner", err: service.ErrNoOwner, want: app.MsgNoOwner},
		{name: "clipboard", err: fmt.Errorf("copy to clipboard: %w", clipboard.ErrUnsupported), want: app.MsgClipboardUnavailable},
		{
			name: "key",
			err:  fmt.Errorf("%w: key is not valid hex", crypto.ErrInvalidKey),
			want: app.MsgInvalidKey + " (invalid encryption key: key is not valid hex)",
		},
		{
			name: "policy",
			err:  fmt.Errorf("%w: no character type selected", generator.ErrPolicy),
			want: app.MsgInvalidPolicy + " (" + generator.ErrPolicy.Error() + ": no character type selected)",
		},
		{
			name: "config",
			err:  errors.Join(fmt.Errorf("%w: empty dsn", config.ErrInvalidStorageConfigs)),
			want: app.MsgInvalidConfig + " (" + config.ErrInvalidStorageConfigs.Error() + ": empty dsn)",
		},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

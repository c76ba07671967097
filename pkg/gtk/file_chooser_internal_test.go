//go:build !gtk_cgo

package gtk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/pkg/glib"
)

func TestShortcutResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, shortcutResult(true, nil))
	})

	t.Run("failure without a GError", func(t *testing.T) {
		err := shortcutResult(false, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShortcutFailed)
		assert.NotEmpty(t, err.Error())
		var gerr *glib.Error
		assert.False(t, errors.As(err, &gerr))
	})

	t.Run("failure with a GError", func(t *testing.T) {
		native := glib.NewError(FileChooserErrorDomain, FileChooserErrorAlreadyExists, "Shortcut /tmp already exists").Native()

		err := shortcutResult(false, native)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShortcutExists)
		assert.Equal(t, "Shortcut /tmp already exists", err.Error())
	})
}

func TestResponseType_IsUser(t *testing.T) {
	tests := []struct {
		r    ResponseType
		want bool
	}{
		{ResponseUser(0), true},
		{ResponseUser(65535), true},
		{ResponseType(65536), false},
		{ResponseOk, false},
		{ResponseNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IsUser())
		})
	}
}

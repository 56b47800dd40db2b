package protoerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"proto-manager/core/protoerr"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *protoerr.Error
		want string
	}{
		{
			name: "KindOnly",
			err:  &protoerr.Error{Kind: protoerr.IdentifierCollision},
			want: "identifier collision",
		},
		{
			name: "FileAndLine",
			err:  protoerr.New(protoerr.MalformedSection, "%q", "[Proto").At("generic.fopro", 12),
			want: `generic.fopro:12: malformed section: "[Proto"`,
		},
		{
			name: "FileWithoutLine",
			err:  protoerr.New(protoerr.InvalidManifestEntry, "missing.fopro").At("items.lst", 0),
			want: "items.lst: invalid file in list: missing.fopro",
		},
		{
			name: "WithCause",
			err:  protoerr.Wrap(protoerr.IO, fs.ErrNotExist, "read"),
			want: "io failure: read: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIs(t *testing.T) {
	base := protoerr.New(protoerr.IncompleteRecord, "no identifier")
	wrapped := fmt.Errorf("build items: %w", base)

	assert.True(t, protoerr.Is(wrapped, protoerr.IncompleteRecord))
	assert.False(t, protoerr.Is(wrapped, protoerr.DecodeMismatch))
	assert.False(t, protoerr.Is(errors.New("plain"), protoerr.IncompleteRecord))
	assert.False(t, protoerr.Is(nil, protoerr.IncompleteRecord))
}

func TestWrap_Unwrap(t *testing.T) {
	err := protoerr.Wrap(protoerr.IO, fs.ErrPermission, "open")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestInFile(t *testing.T) {
	t.Run("FillsMissingFile", func(t *testing.T) {
		err := protoerr.InFile(protoerr.New(protoerr.DecodeMismatch, "x"), "food.fopro")
		var pe *protoerr.Error
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, "food.fopro", pe.File)
	})

	t.Run("KeepsExistingFile", func(t *testing.T) {
		err := protoerr.InFile(protoerr.New(protoerr.DecodeMismatch, "x").At("a.fopro", 3), "b.fopro")
		var pe *protoerr.Error
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, "a.fopro", pe.File)
		assert.Equal(t, 3, pe.Line)
	})

	t.Run("PlainErrorUntouched", func(t *testing.T) {
		plain := errors.New("plain")
		assert.Same(t, plain, protoerr.InFile(plain, "a.fopro"))
	})
}

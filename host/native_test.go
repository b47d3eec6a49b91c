//go:build !(js && wasm)

package host

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/sourcemap/errors"
	"github.com/wippyai/sourcemap/vlq"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{
			name: "vlq eof",
			err:  errors.FromVLQ(vlq.ErrUnexpectedEOF),
			want: "[parcel-sourcemap] VLQ Unexpected end of file",
		},
		{
			name: "source out of range",
			err:  errors.NewWithReason(errors.KindSourceOutOfRange, "index 42 >= 10 sources"),
			want: "[parcel-sourcemap] Source out of range, index 42 >= 10 sources",
		},
		{
			name: "utf8",
			err:  errors.New(errors.KindFromUTF8),
			want: "[parcel-sourcemap] Could not convert utf-8 array to string",
		},
		{
			name: "buffer with empty reason",
			err:  errors.NewWithReason(errors.KindBuffer, ""),
			want: "[parcel-sourcemap] Something went wrong while writing/reading a sourcemap buffer, ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.err)
			if got.Message != tt.want {
				t.Errorf("Message = %q, want %q", got.Message, tt.want)
			}
			if got.Status != StatusGenericFailure {
				t.Errorf("Status = %d, want %d", got.Status, StatusGenericFailure)
			}
		})
	}
}

func TestRender_MatchesCarrier(t *testing.T) {
	for _, k := range errors.Kinds() {
		for _, err := range []*errors.Error{errors.New(k), errors.NewWithReason(k, "detail")} {
			got := Render(err)
			if got.Message != err.Error() {
				t.Errorf("%v: Message = %q, want %q", k, got.Message, err.Error())
			}
			if got.Message == "" {
				t.Errorf("%v: empty message", k)
			}
		}
	}
}

func TestRender_IsError(t *testing.T) {
	var err error = Render(errors.New(errors.KindIO))

	var hostErr *Error
	if !stderrors.As(err, &hostErr) {
		t.Fatal("rendered value should be a *host.Error")
	}
	if err.Error() != "[parcel-sourcemap] IO Error" {
		t.Errorf("Error() = %q", err.Error())
	}
	if Name != "native" {
		t.Errorf("Name = %q, want native", Name)
	}
}

func TestRender_Nil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render(nil) should panic")
		}
	}()
	Render(nil)
}

package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/takaishi/minigrep/search"
)

func TestParseArgs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "root/a.txt", []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		args        []string
		want        search.Request
		wantErr     error
		wantMessage string
	}{
		{
			name:        "no arguments",
			args:        nil,
			wantErr:     ErrNoPattern,
			wantMessage: "Error! No pattern provided",
		},
		{
			name:        "pattern only",
			args:        []string{"hello"},
			wantErr:     ErrNoPath,
			wantMessage: "Error! No path provided",
		},
		{
			name:        "missing path",
			args:        []string{"hello", "nowhere"},
			wantErr:     ErrInvalidPath,
			wantMessage: "Error! Invalid path",
		},
		{
			name: "directory",
			args: []string{"hello", "root"},
			want: search.Request{Pattern: "hello", Path: "root"},
		},
		{
			name: "file",
			args: []string{"hello", "root/a.txt"},
			want: search.Request{Pattern: "hello", Path: "root/a.txt"},
		},
		{
			name: "empty pattern is allowed",
			args: []string{"", "root"},
			want: search.Request{Pattern: "", Path: "root"},
		},
		{
			name: "extra arguments are ignored",
			args: []string{"hello", "root", "extra"},
			want: search.Request{Pattern: "hello", Path: "root"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(fs, tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseArgs() error = %v, want %v", err, tt.wantErr)
				}
				var argsErr *ArgsError
				if !errors.As(err, &argsErr) {
					t.Fatalf("expected *ArgsError, got %T", err)
				}
				if argsErr.Message() != tt.wantMessage {
					t.Errorf("Message() = %q, want %q", argsErr.Message(), tt.wantMessage)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

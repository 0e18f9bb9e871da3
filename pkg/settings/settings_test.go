package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := &Run{MinLogLevel: 0}
	if *got != *want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestSavePath(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want string
	}{
		{
			name: "in place by default",
			run:  Run{InputPath: "doc.json"},
			want: "doc.json",
		},
		{
			name: "explicit output wins",
			run:  Run{InputPath: "doc.json", OutputPath: "out.json"},
			want: "out.json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.SavePath(); got != tt.want {
				t.Errorf("SavePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

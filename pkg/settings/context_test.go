package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name   string
		params *Run
	}{
		{
			name:   "empty_params",
			params: &Run{},
		},
		{
			name: "params_with_values",
			params: &Run{
				InputPath: "doc.json",
				NoColor:   true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			newCtx := IntoContext(ctx, tt.params)

			if newCtx == nil {
				t.Fatal("IntoContext() returned nil context")
			}
			if ctx == newCtx {
				t.Error("IntoContext() should return a new context")
			}

			retrieved, ok := FromContext(newCtx)
			if !ok {
				t.Fatal("FromContext() did not find the stored params")
			}
			if retrieved != tt.params {
				t.Errorf("FromContext() returned a different params pointer")
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		wantOk   bool
	}{
		{
			name: "context_with_params",
			setupCtx: func() context.Context {
				return IntoContext(context.Background(), &Run{NoColor: true})
			},
			wantOk: true,
		},
		{
			name: "context_without_params",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantOk: false,
		},
		{
			name: "context_with_wrong_type",
			setupCtx: func() context.Context {
				return context.WithValue(context.Background(), runParamsKey{}, "wrong type")
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromContext(tt.setupCtx())

			if ok != tt.wantOk {
				t.Errorf("FromContext() ok = %v; want %v", ok, tt.wantOk)
			}
			if tt.wantOk && got == nil {
				t.Fatal("FromContext() returned nil; want non-nil")
			}
			if !tt.wantOk && got != nil {
				t.Errorf("FromContext() got = %v; want nil", got)
			}
		})
	}
}

func TestIntoContext_FromContext_roundtrip(t *testing.T) {
	params := &Run{InputPath: "doc.json", OutputPath: "out.json"}
	ctx := IntoContext(context.Background(), params)

	retrieved, ok := FromContext(ctx)
	if !ok {
		t.Fatal("FromContext() failed to retrieve params")
	}
	if retrieved != params {
		t.Error("FromContext() returned a different params pointer than stored")
	}
}

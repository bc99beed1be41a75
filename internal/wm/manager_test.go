package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-launcher/internal/errors"
	"focus-launcher/pkg/config"
	"focus-launcher/pkg/global"
	"focus-launcher/pkg/logger"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectBackend(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{name: "windows", goos: "windows", want: BackendWin32},
		{name: "x11", goos: "linux", env: map[string]string{"XDG_SESSION_TYPE": "x11"}, want: BackendX11},
		{name: "hyprland", goos: "linux", env: map[string]string{
			"XDG_SESSION_TYPE":            "wayland",
			"HYPRLAND_INSTANCE_SIGNATURE": "abc",
		}, want: BackendHyprland},
		{name: "other wayland", goos: "linux", env: map[string]string{"XDG_SESSION_TYPE": "wayland"}, wantErr: true},
		{name: "tty", goos: "linux", env: map[string]string{"XDG_SESSION_TYPE": "tty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectBackend(tt.goos, envOf(tt.env))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnsupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewManagerRejectsUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "quartz"

	_, err := NewManager(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestNewManagerNilConfigUsesGlobal(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "quartz"
	global.InitGlobals(cfg, logger.Nop())
	t.Cleanup(func() { global.InitGlobals(nil, nil) })

	_, err := NewManager(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
	assert.Contains(t, err.Error(), "quartz")
}

func TestManagerWiresBackend(t *testing.T) {
	x := &X11{run: func(string, ...string) ([]byte, error) { return nil, nil }, log: logger.Nop()}
	m := NewManagerWith(x, logger.Nop())

	assert.Equal(t, "X11", m.GetWMName())
	assert.NotNil(t, m.Directory())
	assert.NotNil(t, m.FocusStealer())
}

package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want AppID
	}{
		{`shell:AppsFolder\Foo!Bar`, "Foo!Bar"},
		{`SHELL:APPSFOLDER\Foo!Bar`, "Foo!Bar"},
		{`  "shell:AppsFolder\Microsoft.WindowsNotepad_8wekyb3d8bbwe!App"  `, "Microsoft.WindowsNotepad_8wekyb3d8bbwe!App"},
		{`shell:AppsFolder\ "Quoted.App" `, "Quoted.App"},
		{`shell:AppsFolder\shell:AppsFolder\Twice`, "Twice"},
		{`Chrome._crx_abcdef`, "Chrome._crx_abcdef"},
		{`""`, ""},
		{"", ""},
		{`shell:AppsFolder`, "shell:AppsFolder"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		`shell:AppsFolder\Foo!Bar`,
		`  " shell:AppsFolder\ "Foo" " `,
		`"shell:AppsFolder\"`,
		`shell:AppsFolder\shell:AppsFolder\"x"`,
		`  plain  `,
		`""""`,
		`shell:appsfolder\App.Id`,
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(string(once)), "input %q", in)
	}
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{
		"",
		`shell:AppsFolder\Foo!Bar`,
		`  " shell:AppsFolder\ "Foo" " `,
		`"shell:AppsFolder\"`,
		`""""`,
		"\t'x'\n",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(string(once)), "input %q", s)
	})
}

func TestNormalizeCustomPrefix(t *testing.T) {
	assert.Equal(t, AppID("Foo"), NormalizePrefix(`apps:Foo`, "apps:"))
	assert.Equal(t, AppID(`shell:AppsFolder\Foo`), NormalizePrefix(`shell:AppsFolder\Foo`, ""))
}

func TestEntry(t *testing.T) {
	assert.False(t, AppID("App.Id").HasEntry())
	assert.True(t, AppID("App.Id!Sub").HasEntry())
	assert.Equal(t, AppID("App.Id!App"), AppID("App.Id").WithEntry("App"))
	assert.Equal(t, "App.Id", AppID("App.Id").String())
}

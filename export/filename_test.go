package export_test

import (
	"testing"

	"xyzdb/export"
)

func TestTrajectoryFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "water", "water.xyz"},
		{"SpacesRemoved", "acetic acid", "aceticacid.xyz"},
		{"HyphensToUnderscores", "2-propanol", "2_propanol.xyz"},
		{"Both", "trans-2-butene oxide", "trans_2_buteneoxide.xyz"},
		{"Empty", "", ".xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := export.TrajectoryFilename(tt.in); got != tt.want {
				t.Errorf("TrajectoryFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupFilename(t *testing.T) {
	if got := export.GroupFilename("alcohol"); got != "alcohol.xyz" {
		t.Errorf("GroupFilename(alcohol) = %q", got)
	}
}

package cmd

import "testing"

func TestChooseDir(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		explicit bool
		args     []string
		want     string
	}{
		{"default with no positional", ".", false, nil, "."},
		{"positional overrides default", ".", false, []string{"/tmp/lists"}, "/tmp/lists"},
		{"explicit flag wins over positional", "/home/me/lists", true, []string{"/tmp/lists"}, "/home/me/lists"},
		{"explicit flag with no positional", "/home/me/lists", true, nil, "/home/me/lists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseDir(tt.dir, tt.explicit, tt.args); got != tt.want {
				t.Errorf("chooseDir(%q, %v, %v) = %q, want %q", tt.dir, tt.explicit, tt.args, got, tt.want)
			}
		})
	}
}

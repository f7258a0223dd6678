package kit

import "testing"

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		spec    string
		field   string
		asc     bool
		wantErr bool
	}{
		{"", "", true, false},
		{"name", "name", true, false},
		{"name:asc", "name", true, false},
		{"name:desc", "name", false, false},
		{"name:DESC", "name", false, false},
		{"name : desc", "name", false, false},
		{"name:sideways", "", true, true},
	}
	for _, tc := range cases {
		field, asc, err := ParseSortSpec(tc.spec)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: err=%v", tc.spec, err)
		}
		if err != nil {
			continue
		}
		if field != tc.field || asc != tc.asc {
			t.Fatalf("%q: got (%q, %v)", tc.spec, field, asc)
		}
	}
}

package cmd

import "testing"

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
		{int64(1.5 * float64(1<<30)), "1.5 GB"},
	}
	for _, c := range cases {
		if got := formatSize(c.size); got != c.want {
			t.Fatalf("formatSize(%d) = %q, beklenen %q", c.size, got, c.want)
		}
	}
}

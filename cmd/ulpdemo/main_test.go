package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDemosWrite(t *testing.T) {
	n, s := *samples, *seed
	t.Cleanup(func() { *samples, *seed = n, s })
	*samples, *seed = 200, 1

	dir := t.TempDir()
	demos := map[string]func(string) error{
		"bessel.svg":          besselGraph,
		"lambert_w0.svg":      lambertGraph,
		"ulp_exp_float.svg":   expULP,
		"ulp_log1p_float.svg": log1pULP,
		"ulp_sqrt_double.svg": sqrtULP,
		"ulp_septic.svg":      septicULP,
	}
	for name, run := range demos {
		path := filepath.Join(dir, name)
		if err := run(path); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s: no output written (%v)", name, err)
		}
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ciparam_test

import (
	"os"
	"testing"

	"github.com/js-arias/metataxa/ci"
	"github.com/js-arias/metataxa/ciparam"
)

func TestParam(t *testing.T) {
	name := "tmp-ci-parameters-for-test.tab"
	p := ciparam.New(name)
	testParam(t, p, nil, name)

	if err := p.SetResamples(250); err != nil {
		t.Fatalf("resamples: unexpected error: %v", err)
	}
	if err := p.SetRetain(0.75); err != nil {
		t.Fatalf("retain: unexpected error: %v", err)
	}
	if err := p.SetLevel(0.99); err != nil {
		t.Fatalf("level: unexpected error: %v", err)
	}
	p.SetSeed(12345)

	defer os.Remove(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := ciparam.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testParam(t, np, p, name)
}

func TestInvalidParam(t *testing.T) {
	p := ciparam.New("")
	if err := p.SetResamples(0); err == nil {
		t.Errorf("resamples: expecting error")
	}
	if err := p.SetRetain(1.5); err == nil {
		t.Errorf("retain: expecting error")
	}
	if err := p.SetLevel(1); err == nil {
		t.Errorf("level: expecting error")
	}
	testParam(t, p, nil, "")
}

func TestSampler(t *testing.T) {
	p := ciparam.New("")
	p.SetResamples(10)
	p.SetSeed(99)

	s, seed := p.Sampler()
	if seed != 99 {
		t.Errorf("seed: got %d, want %d", seed, 99)
	}
	if s.Resamples != 10 || s.Retain != ci.DefRetain || s.Level != ci.DefLevel {
		t.Errorf("sampler: got %+v", s)
	}

	p.SetSeed(0)
	if _, seed := p.Sampler(); seed == 0 {
		t.Errorf("seed: expecting a random seed")
	}
}

func testParam(t testing.TB, p, want *ciparam.P, name string) {
	t.Helper()

	if want == nil {
		want = ciparam.New(name)
	}

	if p.Name() != want.Name() {
		t.Errorf("name: got %q, want %q", p.Name(), want.Name())
	}
	if p.Resamples() != want.Resamples() {
		t.Errorf("resamples: got %d, want %d", p.Resamples(), want.Resamples())
	}
	if p.Retain() != want.Retain() {
		t.Errorf("retain: got %.6f, want %.6f", p.Retain(), want.Retain())
	}
	if p.Level() != want.Level() {
		t.Errorf("level: got %.6f, want %.6f", p.Level(), want.Level())
	}
	if p.Seed() != want.Seed() {
		t.Errorf("seed: got %d, want %d", p.Seed(), want.Seed())
	}
}

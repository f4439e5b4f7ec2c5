// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/metataxa/ciparam"
	"github.com/js-arias/metataxa/sample"
)

// DefParams is the file name used for the subsampling parameters
// when no parameter file is defined.
const DefParams = "params.tab"

// Params reads the subsampling parameters
// as defined in a project.
// If no file is defined,
// or the file does not exist,
// it returns the default parameters.
func (p *Project) Params() (*ciparam.P, error) {
	name := p.Path(Params)
	if name == "" {
		return ciparam.New(DefParams), nil
	}

	cp, err := ciparam.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		return ciparam.New(name), nil
	}
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// Sample reads the taxonomy and pathway files
// as defined in a project.
func (p *Project) Sample() (*sample.Sample, error) {
	tax := p.Path(Taxonomy)
	if tax == "" {
		return nil, fmt.Errorf("taxonomy file not defined in project %q", p.name)
	}
	pwy := p.Path(Pathways)
	if pwy == "" {
		return nil, fmt.Errorf("pathway file not defined in project %q", p.name)
	}

	s, err := sample.Read(tax, pwy)
	if err != nil {
		return nil, fmt.Errorf("on project %q: %v", p.name, err)
	}
	return s, nil
}

/*
Copyright 2014 Zachary Klippenstein

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package preset builds noise fields and disk samplers from YAML documents.

A document describes one field tree and, optionally, a scatter job:

	field:
	  kind: fbm
	  octaves: 5
	  source:
	    kind: cell2d
	    frequency: 0.05
	    seed_key: rocks
	    wavelength: [8, 8]
	scatter:
	  seed_key: trees
	  radius: 20
	  width: 200
	  height: 200
	  k: 30

Seeds are given either as numbers (seed) or as names (seed_key). An fbm whose
source tiles becomes a tiling FBM with lacunarity 2.
*/
package preset

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/zach-klippenstein/gonoise"
	"github.com/zach-klippenstein/gonoise/util"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("preset")

// Defaults applied to fields that leave them out.
const (
	DefaultAmplitude   = 1.0
	DefaultFrequency   = 1.0
	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
	DefaultCandidates  = 30
)

// Options control how presets are built.
type Options struct {
	// Logger receives build decisions. Nil disables logging.
	Logger *log.Logger
}

// Preset is a parsed document.
type Preset struct {
	Field   *FieldSpec   `yaml:"field"`
	Scatter *ScatterSpec `yaml:"scatter"`

	opts Options
}

// FieldSpec describes one node of a field tree.
type FieldSpec struct {
	Kind         string     `yaml:"kind"`
	Amplitude    *float64   `yaml:"amplitude"`
	Frequency    *float64   `yaml:"frequency"`
	Seed         uint32     `yaml:"seed"`
	SeedKey      string     `yaml:"seed_key"`
	Wavelength   []int      `yaml:"wavelength"`
	Octaves      int        `yaml:"octaves"`
	Persistence  *float64   `yaml:"persistence"`
	Lacunarity   *float64   `yaml:"lacunarity"`
	Strength     float64    `yaml:"strength"`
	Source       *FieldSpec `yaml:"source"`
	Displacement *FieldSpec `yaml:"displacement"`
}

// ScatterSpec describes a Poisson-disk sampling job.
type ScatterSpec struct {
	Seed    uint32  `yaml:"seed"`
	SeedKey string  `yaml:"seed_key"`
	Radius  float64 `yaml:"radius"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	K       int     `yaml:"k"`
}

// Load reads and parses the preset at path.
func Load(path string, opts Options) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	p, err := Parse(raw, opts)
	if err != nil {
		return nil, Error.New("%s: %v", path, err)
	}
	return p, nil
}

// Parse validates and decodes a preset document.
func Parse(data []byte, opts Options) (*Preset, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, Error.Wrap(err)
	}
	p.opts = opts
	return &p, nil
}

// validate checks the document against the preset schema. The schema
// validator works on JSON values, so the YAML tree is round-tripped through
// encoding/json first.
func validate(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Error.Wrap(err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return Error.Wrap(err)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return Error.Wrap(err)
	}
	if err := schema.Validate(value); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

func (p *Preset) logf(format string, args ...interface{}) {
	if p.opts.Logger != nil {
		p.opts.Logger.Printf(format, args...)
	}
}

// BuildSampler returns a disk sampler for the scatter section. Named seeds derive
// the sampler's whole 128-bit state.
func (p *Preset) BuildSampler() (*noise.DiskSampler2D, error) {
	if p.Scatter == nil {
		return nil, Error.New("preset has no scatter section")
	}
	if p.Scatter.SeedKey != "" {
		return noise.NewDiskSampler2DFromState(util.XorshiftFromKey(p.Scatter.SeedKey)), nil
	}
	return noise.NewDiskSampler2D(p.Scatter.Seed), nil
}

// Points runs the scatter section on a fresh sampler.
func (p *Preset) Points() ([]noise.Point, error) {
	sampler, err := p.BuildSampler()
	if err != nil {
		return nil, err
	}
	s := p.Scatter
	k := s.K
	if k == 0 {
		k = DefaultCandidates
	}
	if !(s.Radius > 0 && s.Width > 0 && s.Height > 0) || k < 1 {
		return nil, Error.New("invalid scatter: radius %v, region %vx%v, k %d", s.Radius, s.Width, s.Height, k)
	}
	points := sampler.Generate(s.Radius, s.Width, s.Height, k)
	p.logf("scatter: %d points at radius %v in %vx%v", len(points), s.Radius, s.Width, s.Height)
	return points, nil
}

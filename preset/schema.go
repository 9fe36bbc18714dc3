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

package preset

import "github.com/santhosh-tekuri/jsonschema/v5"

const schemaURL = "gonoise-preset.schema.json"

const schemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "field": {"$ref": "#/definitions/field"},
    "scatter": {"$ref": "#/definitions/scatter"}
  },
  "definitions": {
    "seed": {"type": "integer", "minimum": 0, "maximum": 4294967295},
    "positive": {"type": "number", "exclusiveMinimum": 0},
    "field": {
      "type": "object",
      "additionalProperties": false,
      "required": ["kind"],
      "properties": {
        "kind": {"enum": [
          "classic2d", "classic3d", "simplex2d", "simplex3d",
          "supersimplex2d", "supersimplex3d", "cell2d", "cell3d",
          "fbm", "distorted"
        ]},
        "amplitude": {"type": "number"},
        "frequency": {"$ref": "#/definitions/positive"},
        "seed": {"$ref": "#/definitions/seed"},
        "seed_key": {"type": "string", "minLength": 1},
        "wavelength": {
          "type": "array",
          "minItems": 2,
          "maxItems": 3,
          "items": {"type": "integer", "minimum": 1}
        },
        "octaves": {"type": "integer", "minimum": 1, "maximum": 24},
        "persistence": {"type": "number"},
        "lacunarity": {"$ref": "#/definitions/positive"},
        "strength": {"type": "number"},
        "source": {"$ref": "#/definitions/field"},
        "displacement": {"$ref": "#/definitions/field"}
      },
      "not": {"required": ["seed", "seed_key"]}
    },
    "scatter": {
      "type": "object",
      "additionalProperties": false,
      "required": ["radius", "width", "height"],
      "properties": {
        "seed": {"$ref": "#/definitions/seed"},
        "seed_key": {"type": "string", "minLength": 1},
        "radius": {"$ref": "#/definitions/positive"},
        "width": {"$ref": "#/definitions/positive"},
        "height": {"$ref": "#/definitions/positive"},
        "k": {"type": "integer", "minimum": 1}
      },
      "not": {"required": ["seed", "seed_key"]}
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaSource)

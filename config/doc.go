// Package config loads excerpt settings for embedding applications.
//
// Settings files are YAML or TOML, dispatched on extension:
//
//	# excerpt.yaml
//	max_tokens: 4096
//	max_lines: 200
//	chars_per_token: 3.5
//
//	# excerpt.toml
//	max_tokens = 4096
//	max_lines = 200
//	model = "claude-sonnet-4"
//
// Load applies defaults for absent fields and validates the result.
// Settings convert directly into builder inputs:
//
//	s, err := config.Load("excerpt.yaml")
//	builder := excerpt.New().WithCounter(s.Counter())
//	ex, err := builder.Build(doc, tag, s.Options())
//
// Schema exports a JSON schema for the settings file format.
package config

// Package config holds the tunable surface of the helix viewer.
//
// Settings start from a named preset and may be overlaid by a JSON file:
//
//	{
//	  "preset": "simple",
//	  "segments": 24,
//	  "kink_noise": "simplex",
//	  "palette": ["#5577BB", "#99BB88"]
//	}
//
// Keys missing from the file keep the preset's values. Validate checks the
// derived helix/ribbon configs and every colour.
package config

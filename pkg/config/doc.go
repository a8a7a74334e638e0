/*
Package config manages configuration parsing and validation for csvjson.

	            +-------------+
	            |   Config    |
	            | (mappings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   JSON   | |   YAML   | |   HCL    |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes which columns are renamed and which extras are added
- Holds the input/output paths and formats
- Falls back to the built-in mapping for anything left out

🔄 Flow:
1. Reads configuration from file (or uses Default)
2. Parses format-specific syntax
3. Fills omitted sections with defaults
4. Validates keys, types and formats
5. Builds the record transformer

📝 YAML example:

	input: levels.csv
	output: levels.json
	fields:
	  - column: ID
	    key: id
	  - column: Level Code
	    key: code
	extras:
	  - key: date
	  - key: count
	    type: int
	    default: "0"

📝 HCL example:

	input  = "levels.csv"
	output = "levels.json"

	field "ID" {
	  key = "id"
	}

	extra "count" {
	  type    = "int"
	  default = "0"
	}

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, config.DefaultPath)
	if err != nil {
		return err
	}
	tr, err := cfg.Transformer()
*/
package config

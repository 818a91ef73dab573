// Package testutil provides discovery document fixtures and a fake discovery
// endpoint for unit tests.
package testutil

// SheetsV4Document is a trimmed Sheets v4 discovery document. Its schema and
// property names are camelCase and its references point at PascalCase names,
// including one ("ExtendedValue") that the document does not define.
const SheetsV4Document = `{
  "kind": "discovery#restDescription",
  "name": "sheets",
  "version": "v4",
  "schemas": {
    "GridData": {
      "id": "GridData",
      "type": "object",
      "properties": {
        "rowData": { "type": "array", "items": { "$ref": "RowData" } },
        "startRow": { "type": "integer", "format": "int32" },
        "startColumn": { "type": "integer", "format": "int32" }
      }
    },
    "RowData": {
      "id": "RowData",
      "type": "object",
      "properties": {
        "values": { "type": "array", "items": { "$ref": "CellData" } }
      }
    },
    "CellData": {
      "id": "CellData",
      "properties": {
        "userEnteredValue": { "$ref": "ExtendedValue" }
      }
    }
  }
}`

// DriveV3Document is a minimal Drive v3 discovery document.
const DriveV3Document = `{
  "kind": "discovery#restDescription",
  "name": "drive",
  "version": "v3",
  "schemas": {
    "File": {
      "id": "File",
      "type": "object",
      "properties": {
        "name": { "type": "string" },
        "mimeType": { "type": "string" }
      }
    }
  }
}`

// DiscoveryV1Document defines a schema with a property literally named "$ref".
const DiscoveryV1Document = `{
  "kind": "discovery#restDescription",
  "name": "discovery",
  "version": "v1",
  "schemas": {
    "JsonSchema": {
      "id": "JsonSchema",
      "type": "object",
      "properties": {
        "name": { "type": "string" },
        "$ref": { "type": "string" }
      }
    }
  }
}`

// PeopleV1Document is a self-contained document whose references all
// resolve, used for end-to-end validation. A location requires both city
// and state.
const PeopleV1Document = `{
  "kind": "discovery#restDescription",
  "name": "people",
  "version": "v1",
  "schemas": {
    "People": {
      "id": "People",
      "type": "array",
      "items": { "$ref": "Person" }
    },
    "Person": {
      "id": "Person",
      "type": "object",
      "properties": {
        "name": { "type": "string" },
        "homeLocation": { "$ref": "Location" },
        "active": { "type": "boolean" }
      }
    },
    "Location": {
      "id": "Location",
      "type": "object",
      "required": ["city", "state"],
      "properties": {
        "city": { "type": "string" },
        "state": { "type": "string" }
      }
    }
  }
}`

// NoSchemasDocument is a well-formed discovery document without a "schemas" section.
const NoSchemasDocument = `{"kind": "discovery#restDescription", "name": "empty", "version": "v1"}`

// ValidationSchemas returns an already normalized schema set for resolver and
// validator tests that bypass the loader.
func ValidationSchemas() map[string]any {
	return map[string]any{
		"people": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "person"},
		},
		"person": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":     map[string]any{"type": "string"},
				"location": map[string]any{"$ref": "location"},
				"active":   map[string]any{"type": "boolean"},
			},
			"unevaluatedProperties": false,
		},
		"location": map[string]any{
			"type":     "object",
			"required": []any{"city", "state"},
			"properties": map[string]any{
				"city":  map[string]any{"type": "string"},
				"state": map[string]any{"type": "string"},
			},
			"unevaluatedProperties": false,
		},
	}
}

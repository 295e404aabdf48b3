package tracker

// stateSchemaJSON is the JSON Schema for a persisted State. Extra properties
// are allowed; deadline and progress are optional because progress is
// recomputed on decode.
const stateSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "tasks"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "deadline": {"type": "string"},
      "progress": {"type": "integer"},
      "tasks": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "label", "done"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "label": {"type": "string"},
            "done": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

// In file: internal/tools/types.go

// Package tools defines the catalog of YNAB operations exposed to an MCP
// client and the dispatcher that routes a tool call to the matching API
// client method. Tool descriptors are pure static data; all behavior lives in
// the handler table next to them.
package tools

// Tool describes one callable operation: its unique name, a human-readable
// description the calling agent uses to decide when to invoke it, and the
// JSON-Schema-shaped contract of its input parameters.
type Tool struct {
	// Name uniquely identifies the tool, e.g. "get_budget".
	Name string `json:"name"`
	// Description is a clear, concise explanation of what the tool does.
	Description string `json:"description"`
	// InputSchema defines the arguments the tool accepts.
	InputSchema JSONSchema `json:"inputSchema"`
}

// JSONSchema provides a structured, type-safe representation of the JSON
// Schema used for defining tool parameters. Using this struct instead of
// `map[string]interface{}` prevents common schema errors and makes the tool
// definitions much clearer.
type JSONSchema struct {
	// Type defines the data type for a schema node (e.g., "object",
	// "string"). For the top-level parameters object this is always
	// "object".
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Enum restricts a string parameter to a fixed set of values.
	Enum []string `json:"enum,omitempty"`
	// Properties describes the parameters of an object. Keys are parameter
	// names, values are further JSONSchema definitions for each parameter.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the parameter names that are mandatory for a call.
	Required []string `json:"required,omitempty"`
}

// NewTool is a helper that reduces boilerplate when building catalog entries.
func NewTool(name, description string, schema JSONSchema) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}
}

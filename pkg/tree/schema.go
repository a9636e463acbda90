package tree

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// schemaSource is the strict shape of a description. Definitions are
// closed, so unknown keys are rejected too.
const schemaSource = `
#StyleRule: string & =~":"

#Component: {
	type:        string & !=""
	name?:       string
	attributes?: [string]: string | number | bool | null
	styles?:     [...#StyleRule]
	children?:   [...#Component]
}

#Page: {
	label:     string & !=""
	contents?: [...(#Component & {name: string & !=""})]
}

#Document: {
	pages?: [...#Page]
}
`

// ValidateStrict checks the raw description against the strict schema
func ValidateStrict(data []byte, format Format) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("reactgen.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var value cue.Value
	switch format {
	case FormatYAML:
		file, err := cueyaml.Extract("description.yaml", data)
		if err != nil {
			return fmt.Errorf("failed to parse YAML description: %w", err)
		}
		value = ctx.BuildFile(file)
	default:
		value = ctx.CompileBytes(data, cue.Filename("description.json"))
	}
	if err := value.Err(); err != nil {
		return &SchemaError{Details: cueerrors.Details(err, nil)}
	}

	unified := schema.LookupPath(cue.ParsePath("#Document")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Details: cueerrors.Details(err, nil)}
	}

	return nil
}

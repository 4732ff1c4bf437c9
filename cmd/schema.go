package cmd

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("catalogue", "c", false, "Print the schema of catalogue documents instead of selection results")
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of selection results or catalogues",
	Run: func(cmd *cobra.Command, args []string) {
		var target any = &stream.Result{}
		if lo.Must(cmd.Flags().GetBool("catalogue")) {
			target = &source.Catalogue{}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector().Reflect(target)))
	},
}

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		DoNotReference: true,
		Mapper:         optionSchema,
	}
}

// optionSchema describes mo.Option[T] as T or null, matching its JSON encoding.
func optionSchema(t reflect.Type) *jsonschema.Schema {
	if t.PkgPath() != "github.com/samber/mo" || !strings.HasPrefix(t.Name(), "Option[") {
		return nil
	}

	get, ok := t.MethodByName("MustGet")
	if !ok {
		return nil
	}

	var inner string
	switch get.Type.Out(0).Kind() {
	case reflect.String:
		inner = "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		inner = "integer"
	case reflect.Float32, reflect.Float64:
		inner = "number"
	case reflect.Bool:
		inner = "boolean"
	default:
		return nil
	}

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: inner},
			{Type: "null"},
		},
	}
}

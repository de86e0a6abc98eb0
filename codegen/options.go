package codegen

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Option describes one generator option. The same table drives the CLI
// flags, the config file keys and the arguments passed to the generator.
type Option struct {
	Name     string
	Short    string
	Usage    string
	Default  any // string, bool or int; decides the flag type
	Required bool
	// Local options configure this tool and are not passed to the generator.
	Local bool
	// Requires lists options that must be active when this one is.
	Requires []string
	// Conflicts lists options that must not be active together with this one.
	Conflicts []string
}

// Options is the static option table, in the order arguments are passed.
var Options = []Option{
	{Name: "input", Short: "i", Usage: "path to the OpenAPI document", Default: "", Required: true},
	{Name: "output", Short: "o", Usage: "output directory", Default: "", Required: true},
	{Name: "name", Short: "n", Usage: "name of the generated file", Default: "Api.ts"},
	{Name: "client", Short: "c", Usage: "client template: " + strings.Join(TemplateNames(), ", "), Default: DefaultTemplate},
	{Name: "templates", Short: "t", Usage: "directory with custom templates, replaces --client", Default: ""},
	{Name: "modular", Usage: "generate one file per API module", Default: false},
	{Name: "module-name-index", Usage: "path segment used as module name", Default: 0, Requires: []string{"modular"}, Conflicts: []string{"module-name-first-tag"}},
	{Name: "module-name-first-tag", Usage: "use the first tag as module name", Default: false, Requires: []string{"modular"}},
	{Name: "union-enums", Usage: "generate enums as union types", Default: false},
	{Name: "extract-request-params", Usage: "extract request params to a data contract", Default: false},
	{Name: "extract-request-body", Usage: "extract request body to a data contract", Default: false},
	{Name: "clean-output", Usage: "remove the output directory before generating", Default: false},
	{Name: "js", Usage: "generate JavaScript with declaration files", Default: false},
	{Name: "generator", Short: "g", Usage: "generator executable", Default: DefaultGenerator, Local: true},
	{Name: "config", Usage: "path to a YAML config file", Default: DefaultConfigFile, Local: true},
	{Name: "verbose", Short: "v", Usage: "enable debug logging", Default: false, Local: true},
}

// LookupOption returns the option called name.
func LookupOption(name string) (Option, bool) {
	for _, o := range Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// EnvVar is the environment variable that can set the option.
func (o Option) EnvVar() string {
	return "OAGEN_" + strings.ToUpper(strings.ReplaceAll(o.Name, "-", "_"))
}

// Config holds resolved option values. Keys in the yaml and json tags match
// the option names.
type Config struct {
	Input                string `json:"input" yaml:"input"`
	Output               string `json:"output" yaml:"output"`
	Name                 string `json:"name" yaml:"name"`
	Client               string `json:"client" yaml:"client"`
	Templates            string `json:"templates" yaml:"templates"`
	Modular              bool   `json:"modular" yaml:"modular"`
	ModuleNameIndex      int    `json:"module-name-index" yaml:"module-name-index"`
	ModuleNameFirstTag   bool   `json:"module-name-first-tag" yaml:"module-name-first-tag"`
	UnionEnums           bool   `json:"union-enums" yaml:"union-enums"`
	ExtractRequestParams bool   `json:"extract-request-params" yaml:"extract-request-params"`
	ExtractRequestBody   bool   `json:"extract-request-body" yaml:"extract-request-body"`
	CleanOutput          bool   `json:"clean-output" yaml:"clean-output"`
	JS                   bool   `json:"js" yaml:"js"`
	Generator            string `json:"generator" yaml:"generator"`
	Config               string `json:"config" yaml:"-"`
	Verbose              bool   `json:"verbose" yaml:"-"`
}

// Defaults returns a Config with every option at its default value.
func Defaults() Config {
	var c Config
	for _, o := range Options {
		if err := c.Set(o.Name, o.Default); err != nil {
			panic(err)
		}
	}
	return c
}

// Get returns the value of the named option.
func (c *Config) Get(name string) (any, bool) {
	fv, ok := c.field(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// Set assigns value to the named option. value must have the option's type.
func (c *Config) Set(name string, value any) error {
	fv, ok := c.field(name)
	if !ok {
		return fmt.Errorf("unknown option %q", name)
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || !rv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("option %q: cannot assign %T to %s", name, value, fv.Type())
	}
	fv.Set(rv)
	return nil
}

// Active reports whether the named option differs from its default.
func (c *Config) Active(name string) bool {
	v, _ := c.Get(name)
	return active(name, v)
}

// Args renders the non-local active options as generator arguments, in
// table order.
func (c *Config) Args() []string {
	var args []string
	for _, o := range Options {
		if o.Local || !c.Active(o.Name) {
			continue
		}
		v, _ := c.Get(o.Name)
		switch x := v.(type) {
		case bool:
			args = append(args, "--"+o.Name)
		case int:
			args = append(args, "--"+o.Name, strconv.Itoa(x))
		case string:
			args = append(args, "--"+o.Name, x)
		}
	}
	return args
}

// field finds the struct field whose json tag is name.
func (c *Config) field(name string) (reflect.Value, bool) {
	rv := reflect.ValueOf(c).Elem()
	for i := range rv.NumField() {
		tag := strings.Split(rv.Type().Field(i).Tag.Get("json"), ",")[0]
		if tag == name {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Alia5/gpiomap/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding the defaults of a command's flags.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Flags to generate config for" enum:"global,show,assign"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var configTemplates = map[string]reflect.Type{
	"global": reflect.TypeOf(Globals{}),
	"show":   reflect.TypeOf(Show{}),
	"assign": reflect.TypeOf(Assign{}),
}

// Run generates a configuration template by reflecting over the command struct tags.
func (c *ConfigInit) Run() error {
	t, ok := configTemplates[c.Command]
	if !ok {
		return fmt.Errorf("unknown command %q; expected global, show or assign", c.Command)
	}
	root := buildMapFromStruct(t)

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + c.Format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch c.Format {
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		data, err = json.MarshalIndent(root, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// configKey turns a Go field name into the key Kong's config resolvers look
// up: LayoutFile => layout_file.
func configKey(field string) string {
	var sb strings.Builder
	r := []rune(field)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				sb.WriteByte('_')
			}
			c = unicode.ToLower(c)
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, isArg := f.Tag.Lookup("arg"); isArg {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			name := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			sub := buildMapFromStruct(f.Type)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		key := configKey(f.Name)
		if name := f.Tag.Get("name"); name != "" {
			key = strings.ReplaceAll(name, "-", "_")
		}
		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	default:
		return nil
	}
}

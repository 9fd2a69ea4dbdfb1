// Package flagx lets several packages parse their own flags out of one
// command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// Spec maps an allowed flag name (with its dash, e.g. "-db") to whether the
// flag takes a separate value argument. Boolean flags map to false.
type Spec map[string]bool

// FilterArgs returns only the arguments that belong to flags in spec.
//
// Both "-flag value" and "-flag=value" forms are recognised. A value is only
// consumed for flags that take one, and never when it starts with a dash.
func FilterArgs(args []string, spec Spec) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := spec[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := spec[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JSONConfigPath extracts the config file path given via -c or -config.
// Returns "" when neither is present.
func JSONConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Spec{"-c": true, "-config": true}))

	return path
}

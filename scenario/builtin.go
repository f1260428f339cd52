package scenario

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns an embedded scenario by name, e.g. "reference".
func Builtin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, errors.Errorf("scenario: no builtin scenario %q", name)
	}

	return Parse(data)
}

// BuiltinNames lists the embedded scenarios.
func BuiltinNames() []string {
	entries, _ := builtinFS.ReadDir("builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Open resolves arg as a builtin name first, then as a file path.
func Open(arg string) (*Scenario, error) {
	for _, n := range BuiltinNames() {
		if n == arg {
			return Builtin(n)
		}
	}

	return Load(arg)
}

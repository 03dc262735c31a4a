package activation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// ErrUnknownFunction is returned by Parse when name does not canonicalize
// to any member of the family.
var ErrUnknownFunction = errors.New("activation: unknown function name")

// byCanonicalName maps the canonical form (see canonicalize: PascalCase,
// then upper-cased) of every member's Name() to its Function value, built
// once at init so Parse is O(1).
var byCanonicalName = func() map[string]Function {
	m := make(map[string]Function, len(All()))
	for _, f := range All() {
		m[canonicalize(f.Name())] = f
	}

	return m
}()

// canonicalize normalizes an activation function name for lookup: it
// converts to PascalCase via strcase (so "bipolar_sigmoid", "bipolar-sigmoid",
// and "BipolarSigmoid" all resolve the same way) and upper-cases the result
// once more for case-insensitive matching. strcase is already an indirect
// dependency of this module's lineage (emer-gosl/emer-emergent use it to
// normalize Go identifiers into other namings); Parse reuses it for the
// mirror-image job of turning a config-file string into a canonical name.
func canonicalize(name string) string {
	return strings.ToUpper(strcase.ToCamel(name))
}

// Parse resolves a config-file activation function name to a Function,
// tolerant of snake_case, kebab-case, or the exact Name() spelling. It is
// the inverse of Name, used by package config to decode CPPN node
// descriptions loaded from YAML.
func Parse(name string) (Function, error) {
	f, ok := byCanonicalName[canonicalize(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	return f, nil
}

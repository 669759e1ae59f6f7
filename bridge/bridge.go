// Package bridge exports the shared digest primitives to the host runtime.
package bridge

import (
	"github.com/safedep/hashbridge/digest"
	"github.com/safedep/hashbridge/host"
)

// ModuleName is the name the host loads the bridge module under.
const ModuleName = "hashbridge"

// Exported function names.
const (
	ExportHashSHA256 = "hash_" + string(digest.SHA256)
	ExportHashBLAKE3 = "hash_" + string(digest.BLAKE3)
)

// ExportName returns the exported function name for alg.
func ExportName(alg digest.Algorithm) string {
	return "hash_" + string(alg)
}

// HashFunc is a text-in, text-out digest primitive.
type HashFunc func(input string) string

// Adapt wraps hash as a host function taking exactly one string argument.
// The primitive is only called once the argument has been decoded.
func Adapt(hash HashFunc) host.Function {
	return func(cx *host.FunctionContext) (host.Value, error) {
		input, err := cx.StringArgument(0)
		if err != nil {
			return nil, err
		}
		return cx.String(hash(input)), nil
	}
}

// Main registers the bridge exports. It is the module's load-time hook.
func Main(m *host.Module) error {
	if err := m.ExportFunction(ExportHashSHA256, Adapt(digest.HashSHA256)); err != nil {
		return err
	}
	if err := m.ExportFunction(ExportHashBLAKE3, Adapt(digest.HashBLAKE3)); err != nil {
		return err
	}
	return nil
}

var loader = host.NewLoader(ModuleName, Main)

// Load returns the process-wide bridge module, loading it on first use.
func Load() (*host.Module, error) {
	return loader.Load()
}

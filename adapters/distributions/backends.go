package distributions

import (
	"strings"

	"infstat/internal/errors"
	"infstat/ports"
)

// Backend names accepted by ByName
const (
	BackendGonum    = "gonum"
	BackendMoremath = "moremath"
)

// ByName returns the provider registered under name
func ByName(name string) (ports.DistributionProvider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendGonum:
		return NewGonum(), nil
	case BackendMoremath:
		return NewMoremath(), nil
	}
	return nil, errors.InvalidInputf("unknown distribution backend %q", name)
}

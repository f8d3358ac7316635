package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownModel indicates an unsupported similarity model name.
	ErrUnknownModel = errors.New("network: unknown similarity model")
	// ErrInvalidParameter indicates a matcher parameter outside its domain.
	ErrInvalidParameter = errors.New("network: invalid matcher parameter")
)

// Model names a similarity model.
type Model string

const (
	ModelExact   Model = "exact"
	ModelBOW     Model = "bow"
	ModelJaccard Model = "jaccard"
	ModelCosine  Model = "cosine"
)

// Models lists every supported model in canonical order.
func Models() []Model {
	return []Model{ModelExact, ModelBOW, ModelJaccard, ModelCosine}
}

// ParseModel maps a config or flag value onto a Model.
func ParseModel(value string) (Model, error) {
	switch m := Model(strings.ToLower(strings.TrimSpace(value))); m {
	case ModelExact, ModelBOW, ModelJaccard, ModelCosine:
		return m, nil
	case "bow-count", "bow_count", "count":
		return ModelBOW, nil
	case "tfidf", "tf-idf":
		return ModelCosine, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, value)
	}
}

// Parameterized reports whether the model takes a sweep parameter.
func (m Model) Parameterized() bool {
	return m != ModelExact
}

// ValidateParameter checks param against the model's domain: an integer >= 1
// for bow, a real in (0, 1] for jaccard and cosine. Exact ignores it.
func (m Model) ValidateParameter(param float64) error {
	switch m {
	case ModelExact:
		return nil
	case ModelBOW:
		if param < 1 || param != float64(int(param)) {
			return fmt.Errorf("%w: bow min matches must be an integer >= 1, got %v", ErrInvalidParameter, param)
		}
		return nil
	case ModelJaccard, ModelCosine:
		if !(param > 0 && param <= 1) {
			return fmt.Errorf("%w: %s threshold must be in (0, 1], got %v", ErrInvalidParameter, m, param)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownModel, string(m))
	}
}

// FormatParameter renders param the way it appears in file names and logs.
// Exact has no parameter and renders as "".
func (m Model) FormatParameter(param float64) string {
	switch m {
	case ModelExact:
		return ""
	case ModelBOW:
		return strconv.Itoa(int(param))
	default:
		return strconv.FormatFloat(param, 'f', -1, 64)
	}
}

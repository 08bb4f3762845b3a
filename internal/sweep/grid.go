package sweep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/tsunami/internal/wave"
)

// Variation lists the values one parameter takes across a sweep.
type Variation struct {
	Name   string
	Values []float64
}

// ParseVariation reads "name=v1,v2,...".
func ParseVariation(s string) (Variation, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" || list == "" {
		return Variation{}, fmt.Errorf("variation %q: want name=v1,v2,...", s)
	}
	v := Variation{Name: strings.TrimSpace(name)}
	for _, field := range strings.Split(list, ",") {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Variation{}, fmt.Errorf("variation %q: %w", s, err)
		}
		v.Values = append(v.Values, val)
	}
	return v, nil
}

// Set assigns value to the named parameter of p. Integer parameters must
// receive whole numbers.
func Set(p *wave.Params, name string, value float64) error {
	asInt := func(dst *int) error {
		if value != float64(int(value)) {
			return fmt.Errorf("parameter %s needs an integer, got %g", name, value)
		}
		*dst = int(value)
		return nil
	}

	switch name {
	case "icenter":
		return asInt(&p.ICenter)
	case "grid_size":
		return asInt(&p.GridSize)
	case "timesteps":
		return asInt(&p.Timesteps)
	case "dt":
		p.Dt = value
	case "dx":
		p.Dx = value
	case "c":
		p.C = value
	case "decay":
		p.Decay = value
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}

// Grid expands base over the cartesian product of vars. The last variation
// changes fastest.
func Grid(base wave.Params, vars ...Variation) ([]wave.Params, error) {
	out := []wave.Params{base}
	for _, v := range vars {
		if len(v.Values) == 0 {
			return nil, fmt.Errorf("variation %s has no values", v.Name)
		}
		next := make([]wave.Params, 0, len(out)*len(v.Values))
		for _, p := range out {
			for _, val := range v.Values {
				q := p
				if err := Set(&q, v.Name, val); err != nil {
					return nil, err
				}
				next = append(next, q)
			}
		}
		out = next
	}
	return out, nil
}
